package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"courseplanner/internal/adapters/report"
	"courseplanner/internal/application"
	"courseplanner/internal/application/commands"
	"courseplanner/internal/ports"
)

// RegisterWriteTools adds the catalog loading tool to the MCP server.
func RegisterWriteTools(s *server.MCPServer, source ports.CourseSource, session *application.Session, defaultPath string) {
	s.AddTool(loadTool(defaultPath), loadHandler(source, session, defaultPath))
}

// --- load_catalog ---

func loadTool(defaultPath string) mcp.Tool {
	return mcp.NewTool("load_catalog",
		mcp.WithDescription("Load (or reload) the course catalog from a file and return the load summary. Replaces the previously loaded courses unless the file cannot be read."),
		mcp.WithString("path",
			mcp.Description(fmt.Sprintf("Catalog file path. Defaults to %s", defaultPath)),
		),
	)
}

func loadHandler(source ports.CourseSource, session *application.Session, defaultPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", defaultPath)
		if err := application.ValidateRequired("catalogPath", path); err != nil {
			return toolError(err)
		}

		summary := commands.NewLoadCommand(source, session, path).Execute(ctx)
		text := report.Summary(summary)
		if summary.SourceFailed() {
			return mcp.NewToolResultError(text), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
