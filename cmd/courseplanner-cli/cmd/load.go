package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseplanner/internal/adapters/report"
)

var strictLoad bool

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the catalog and print the load summary",
	Long: `Load the catalog and print counters plus every diagnostic found.

Examples:
  courseplanner-cli load --catalog courses.csv
  courseplanner-cli load --strict`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary := loadCatalog()
		report.WriteSummary(cmd.OutOrStdout(), summary)

		if summary.SourceFailed() {
			return fmt.Errorf("cannot open catalog %s", catalogPath)
		}
		if strictLoad && len(summary.Diagnostics) > 1 {
			return fmt.Errorf("catalog has %d problem(s)", len(summary.Diagnostics)-1)
		}
		return nil
	},
}

func init() {
	loadCmd.Flags().BoolVar(&strictLoad, "strict", false, "exit non-zero when any diagnostic besides timing is reported")
	rootCmd.AddCommand(loadCmd)
}
