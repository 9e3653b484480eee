package cmd

import (
	"github.com/spf13/cobra"

	"courseplanner/internal/adapters/report"
	"courseplanner/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses in course-number order",
	Long: `List every valid course, sorted by course number.

Courses on a prerequisite cycle are left out.

Examples:
  courseplanner-cli list
  courseplanner-cli list --catalog ~/abcu/courses.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCatalog(); err != nil {
			return err
		}

		list, err := commands.NewListCoursesCommand(session).Execute(ctx)
		if err != nil {
			return err
		}

		report.WriteSchedule(cmd.OutOrStdout(), list.Courses, list.Elapsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
