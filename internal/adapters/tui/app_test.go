package tui

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseplanner/internal/adapters/filesystem"
	"courseplanner/internal/adapters/tui/views"
	"courseplanner/internal/application"
)

type stubEditor struct {
	err error
}

func (e stubEditor) OpenFile(string) error { return e.err }

func (e stubEditor) Command(string) (*exec.Cmd, error) { return nil, e.err }

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestApp(t *testing.T, path string, ed stubEditor) *App {
	t.Helper()
	return NewApp(context.Background(), application.NewSession(), filesystem.NewSource(""), ed, path)
}

func press(a *App, s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := a.Update(msg)
	return cmd
}

// deliver runs cmd and feeds its message back into the app
func deliver(t *testing.T, a *App, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := a.Update(cmd())
	return next
}

func loadViaMenu(t *testing.T, a *App) {
	t.Helper()
	deliver(t, a, press(a, "1")) // menu select -> prompt
	require.Equal(t, ViewPrompt, a.State())
	cmd := deliver(t, a, press(a, "enter")) // prompt submit -> load
	deliver(t, a, cmd)
	require.Equal(t, ViewOutput, a.State())
}

func TestApp_CatalogEntriesGatedUntilLoad(t *testing.T) {
	a := newTestApp(t, writeCatalog(t, "CSCI100,Intro\n"), stubEditor{})

	cmd := press(a, "2")
	assert.Nil(t, cmd)
	assert.Equal(t, ViewMenu, a.State())
	assert.Contains(t, a.View(), "Load the catalog first")
}

func TestApp_LoadThenPrintCourseList(t *testing.T) {
	a := newTestApp(t, writeCatalog(t, "CSCI200,Data Structures,CSCI100\nCSCI100,Intro\n"), stubEditor{})

	loadViaMenu(t, a)
	assert.Equal(t, "Load Summary", a.output.Title())
	assert.Contains(t, a.output.Content(), "Inserted:          2")

	deliver(t, a, press(a, "esc"))
	require.Equal(t, ViewMenu, a.State())

	_, _ = a.Update(views.MenuSelectMsg{Action: views.ActionList})
	assert.Equal(t, ViewOutput, a.State())
	assert.True(t, strings.HasPrefix(a.output.Content(), "Here is a sample schedule:\n\nCSCI100, Intro\nCSCI200, Data Structures\n"))
	assert.Regexp(t, `\(List generated in \d+ ms\)\n$`, a.output.Content())
}

func TestApp_PrintCourse(t *testing.T) {
	a := newTestApp(t, writeCatalog(t, "CSCI100,Intro\nCSCI200,Data Structures,CSCI100\n"), stubEditor{})
	loadViaMenu(t, a)

	_, _ = a.Update(views.MenuSelectMsg{Action: views.ActionCourse})
	require.Equal(t, ViewPrompt, a.State())
	press(a, "csci200")
	deliver(t, a, press(a, "enter"))

	assert.Equal(t, ViewOutput, a.State())
	assert.Contains(t, a.output.Content(), "CSCI200, Data Structures")
	assert.Contains(t, a.output.Content(), "  - CSCI100: Intro")
}

func TestApp_PrintUnknownCourse(t *testing.T) {
	a := newTestApp(t, writeCatalog(t, "CSCI100,Intro\n"), stubEditor{})
	loadViaMenu(t, a)

	_, _ = a.Update(views.PromptSubmitMsg{Purpose: views.PromptCourse, Value: "math999"})
	assert.Equal(t, "Course MATH999 not found.\n", a.output.Content())
}

func TestApp_FailedLoadKeepsCourses(t *testing.T) {
	a := newTestApp(t, writeCatalog(t, "CSCI100,Intro\n"), stubEditor{})
	loadViaMenu(t, a)

	cmd := deliver(t, a, func() tea.Msg {
		return views.PromptSubmitMsg{Purpose: views.PromptLoad, Value: filepath.Join(t.TempDir(), "missing.csv")}
	})
	deliver(t, a, cmd)

	assert.Contains(t, a.output.Content(), "SourceError")
	assert.True(t, a.menu.Loaded())
	assert.Equal(t, 1, a.session.Catalog().Len())
}

func TestApp_EditorFailureReported(t *testing.T) {
	path := writeCatalog(t, "CSCI100,Intro\n")
	a := newTestApp(t, path, stubEditor{err: errors.New("no editor found")})
	loadViaMenu(t, a)

	cmd := press(a, "e")
	cmd = deliver(t, a, cmd) // OpenEditorMsg -> editor command
	next := deliver(t, a, cmd)

	assert.Nil(t, next)
	assert.Contains(t, a.View(), "no editor found")
}

func TestApp_EditorReloadsCatalog(t *testing.T) {
	path := writeCatalog(t, "CSCI100,Intro\n")
	a := newTestApp(t, path, stubEditor{})
	loadViaMenu(t, a)

	require.NoError(t, os.WriteFile(path, []byte("CSCI100,Intro\nMATH201,Discrete Math\n"), 0644))
	cmd := deliver(t, a, func() tea.Msg { return editorFinishedMsg{path: path} })
	deliver(t, a, cmd)

	assert.Equal(t, 2, a.session.Catalog().Len())
}
