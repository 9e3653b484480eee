package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseplanner/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search courses by number or title",
	Long: `Search loaded courses by course number or title.

Results are ranked by relevance using fuzzy matching.

Examples:
  courseplanner-cli search algorithms
  courseplanner-cli search csci3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCatalog(); err != nil {
			return err
		}

		results, err := commands.NewSearchCoursesCommand(session, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(out, "%s, %s\n", r.ID, r.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
