package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseplanner/internal/adapters/filesystem"
	"courseplanner/internal/application"
)

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text, result.IsError
}

func TestTools_LoadThenQuery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte("CSCI100,Intro\nCSCI200,Data Structures,CSCI100\n"), 0644))

	session := application.NewSession()
	source := filesystem.NewSource("")

	text, isErr := call(t, listHandler(session), nil)
	assert.True(t, isErr)
	assert.Contains(t, text, "no courses loaded")

	text, isErr = call(t, loadHandler(source, session, path), nil)
	assert.False(t, isErr)
	assert.Contains(t, text, "Inserted:          2")

	text, isErr = call(t, listHandler(session), nil)
	assert.False(t, isErr)
	assert.Contains(t, text, "CSCI200, Data Structures")
	assert.Contains(t, text, "(List generated in ")

	text, isErr = call(t, showHandler(session), map[string]any{"id": "csci200"})
	assert.False(t, isErr)
	assert.Contains(t, text, "  - CSCI100: Intro")

	text, isErr = call(t, searchHandler(session), map[string]any{"query": "struct"})
	assert.False(t, isErr)
	assert.Equal(t, "CSCI200, Data Structures\n", text)
}

func TestTools_LoadMissingFileKeepsCatalog(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(good, []byte("CSCI100,Intro\n"), 0644))

	session := application.NewSession()
	source := filesystem.NewSource("")
	call(t, loadHandler(source, session, good), nil)

	text, isErr := call(t, loadHandler(source, session, good), map[string]any{"path": filepath.Join(dir, "nope.csv")})
	assert.True(t, isErr)
	assert.Contains(t, text, "SourceError")

	_, isErr = call(t, showHandler(session), map[string]any{"id": "CSCI100"})
	assert.False(t, isErr)
}

func TestTools_ShowUnknown(t *testing.T) {
	session := application.NewSession()
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte("CSCI100,Intro\n"), 0644))
	call(t, loadHandler(filesystem.NewSource(""), session, path), nil)

	text, isErr := call(t, showHandler(session), map[string]any{"id": "MATH999"})
	assert.True(t, isErr)
	assert.Contains(t, text, "MATH999")
}
