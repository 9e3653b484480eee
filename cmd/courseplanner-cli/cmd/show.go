package cmd

import (
	"github.com/spf13/cobra"

	"courseplanner/internal/adapters/report"
	"courseplanner/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <course>",
	Short: "Show a course and its prerequisites",
	Long: `Show the title of a course and the titles of its prerequisites.

Course numbers are case-insensitive.

Examples:
  courseplanner-cli show CSCI300
  courseplanner-cli show csci300`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCatalog(); err != nil {
			return err
		}

		detail, err := commands.NewShowCourseCommand(session, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		report.WriteCourse(cmd.OutOrStdout(), detail)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
