package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"courseplanner/internal/adapters/filesystem"
	mcpadapter "courseplanner/internal/adapters/mcp"
	"courseplanner/internal/application"
	"courseplanner/internal/application/commands"
	"courseplanner/internal/config"
	"courseplanner/internal/ctxlog"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatalf("courseplanner-mcp: %v", err)
	}

	catalogFlag := flag.String("catalog", cfg.CatalogPath, "path to the course catalog")
	preload := flag.Bool("preload", true, "load the catalog at startup")
	flag.Parse()

	// stdout carries the MCP protocol, so logs go to stderr
	logger, err := ctxlog.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("courseplanner-mcp: %v", err)
	}
	// tool handlers get the server's context, so they log through the default
	slog.SetDefault(logger)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	session := application.NewSession()
	source := filesystem.NewSource("")

	if *preload {
		summary := commands.NewLoadCommand(source, session, *catalogFlag).Execute(ctx)
		if summary.SourceFailed() {
			logger.Warn("preload failed; use load_catalog", "path", *catalogFlag)
		}
	}

	mcpServer := server.NewMCPServer(
		"courseplanner-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, session)
	mcpadapter.RegisterWriteTools(mcpServer, source, session, *catalogFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("courseplanner-mcp: %v", err)
	}
}
