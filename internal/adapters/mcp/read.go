package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"courseplanner/internal/adapters/report"
	"courseplanner/internal/application"
	"courseplanner/internal/application/commands"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, session *application.Session) {
	s.AddTool(listTool(), listHandler(session))
	s.AddTool(showTool(), showHandler(session))
	s.AddTool(searchTool(), searchHandler(session))
}

// --- list_courses ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_courses",
		mcp.WithDescription("List every loaded course sorted by course number. Call load_catalog first."),
	)
}

func listHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := commands.NewListCoursesCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(report.Schedule(list.Courses, list.Elapsed)), nil
	}
}

// --- show_course ---

func showTool() mcp.Tool {
	return mcp.NewTool("show_course",
		mcp.WithDescription("Show a course title and its prerequisites with their titles. Course numbers are case-insensitive."),
		mcp.WithString("id",
			mcp.Description("Course number (e.g. CSCI300)"),
			mcp.Required(),
		),
	)
}

func showHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		detail, err := commands.NewShowCourseCommand(session, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(report.Course(detail)), nil
	}
}

// --- search_courses ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_courses",
		mcp.WithDescription("Search loaded courses by number or title. Returns matches ranked by relevance."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCoursesCommand(session, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s, %s\n", r.ID, r.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
