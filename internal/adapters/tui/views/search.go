package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"courseplanner/internal/adapters/tui/styles"
	"courseplanner/internal/application"
	"courseplanner/internal/application/commands"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show course"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy course number"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const searchPageSize = 10

// SearchModel filters the loaded catalog as the user types
type SearchModel struct {
	ViewState
	session *application.Session
	input   textinput.Model
	results []commands.SearchResult
	pager   *Paginator
}

// NewSearchModel creates a new search view model
func NewSearchModel(session *application.Session) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Course number or title..."
	input.Focus()

	return &SearchModel{
		session: session,
		input:   input,
		pager:   NewPaginator(searchPageSize),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *SearchModel) Reset() {
	m.ClearMessage()
	m.input.SetValue("")
	m.results = nil
	m.pager.Reset()
	m.input.Focus()
}

// Results returns the current matches
func (m *SearchModel) Results() []commands.SearchResult {
	return m.results
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToMenuMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if r, ok := m.selected(); ok {
				if err := clipboard.WriteAll(r.ID.String()); err != nil {
					m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", r.ID), false)
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if r, ok := m.selected(); ok {
				id := r.ID.String()
				return m, func() tea.Msg { return ShowCourseMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.refresh()
	}
	return m, cmd
}

// refresh reruns the query against the current catalog. The catalog lives in
// memory, so searching inline keeps results in step with every keystroke.
func (m *SearchModel) refresh() {
	results, err := commands.NewSearchCoursesCommand(m.session, m.input.Value()).Execute(context.Background())
	if err != nil {
		m.results = nil
		m.SetMessage(err.Error(), true)
	} else {
		m.results = results
		m.ClearMessage()
	}
	m.pager.SetTotal(len(m.results))
}

func (m *SearchModel) selected() (commands.SearchResult, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return commands.SearchResult{}, false
	}
	return m.results[i], true
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(strings.TrimSpace(m.input.Value())) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results (page %d/%d)",
			len(m.results), m.pager.CurrentPage(), m.pager.TotalPages())))
		b.WriteString("\n\n")

		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			r := m.results[i]
			text := fmt.Sprintf("%s, %s", r.ID, r.Title)
			if i == m.pager.Cursor() {
				text = styles.NodeSelected.Render(text)
			}
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n\n")
	}
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Copy, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}
