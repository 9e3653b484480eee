package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"courseplanner/internal/adapters/filesystem"
	"courseplanner/internal/application"
	"courseplanner/internal/application/commands"
	"courseplanner/internal/config"
	"courseplanner/internal/ctxlog"
	"courseplanner/internal/domain"
)

var (
	catalogPath string
	logLevel    string

	session *application.Session
	source  *filesystem.Source
	ctx     = context.Background()
)

var rootCmd = &cobra.Command{
	Use:   "courseplanner-cli",
	Short: "Load and query a course catalog",
	Long: `courseplanner-cli loads a course catalog (one course per line:
number,title[,prerequisite]*), validates it and answers questions about it.

The catalog is read on every invocation. Malformed lines, duplicate numbers,
unknown or self prerequisites and prerequisite cycles are reported in the
load summary; the remaining courses stay available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, _, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("catalog") {
			cfg.CatalogPath = catalogPath
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if err := application.ValidateRequired("catalogPath", cfg.CatalogPath); err != nil {
			return err
		}
		catalogPath = cfg.CatalogPath

		logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.LogLevel)
		if err != nil {
			return err
		}
		ctx = ctxlog.WithLogger(context.Background(), logger)

		session = application.NewSession()
		source = filesystem.NewSource("")
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", config.DefaultCatalogPath, "path to the course catalog")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}

// loadCatalog loads the configured catalog into the session
func loadCatalog() domain.LoadSummary {
	return commands.NewLoadCommand(source, session, catalogPath).Execute(ctx)
}

// requireCatalog loads the catalog and fails when nothing usable was loaded
func requireCatalog() error {
	summary := loadCatalog()
	if summary.SourceFailed() {
		return fmt.Errorf("cannot open catalog %s", catalogPath)
	}
	if summary.Inserted == 0 {
		return fmt.Errorf("%w: run `courseplanner-cli load` to see why", application.ErrNotLoaded)
	}
	return nil
}
