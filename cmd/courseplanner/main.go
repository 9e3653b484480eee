package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"courseplanner/internal/adapters/editor"
	"courseplanner/internal/adapters/filesystem"
	"courseplanner/internal/adapters/tui"
	"courseplanner/internal/application"
	"courseplanner/internal/config"
	"courseplanner/internal/ctxlog"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalogFlag := flag.String("catalog", cfg.CatalogPath, "path to the course catalog")
	logFile := flag.String("log-file", "", "write logs to this file (the screen belongs to the TUI)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "courseplanner")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := ctxlog.New(logOut, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	app := tui.NewApp(
		ctx,
		application.NewSession(),
		filesystem.NewSource(""),
		editor.NewOpener(cfg.Editor),
		*catalogFlag,
	)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
