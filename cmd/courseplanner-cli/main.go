package main

import "courseplanner/cmd/courseplanner-cli/cmd"

func main() {
	cmd.Execute()
}
