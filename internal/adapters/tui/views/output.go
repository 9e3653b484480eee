package views

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// OutputKeyMap defines key bindings for the output view
type OutputKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Edit key.Binding
	Back key.Binding
}

var OutputKeys = OutputKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy course number"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit catalog"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "back"),
	),
}

// chrome is the number of rows taken by the title, message and help line
const chrome = 8

// OutputModel shows scrollable text produced by a menu action
type OutputModel struct {
	ViewState
	title    string
	content  string
	copyText string
	editPath string
	viewport viewport.Model
}

// NewOutputModel creates an empty output view
func NewOutputModel() *OutputModel {
	return &OutputModel{viewport: viewport.New(80, 20)}
}

// Show replaces the displayed text. copyText enables the copy key and
// editPath enables the edit key; either may be empty.
func (m *OutputModel) Show(title, content, copyText, editPath string) {
	m.ClearMessage()
	m.title = title
	m.content = content
	m.copyText = copyText
	m.editPath = editPath
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// Content returns the displayed text
func (m *OutputModel) Content() string {
	return m.content
}

// Title returns the output heading
func (m *OutputModel) Title() string {
	return m.title
}

// SetSize resizes the view and its viewport
func (m *OutputModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-chrome, 3)
}

// Init initializes the output view
func (m *OutputModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the output view
func (m *OutputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, OutputKeys.Back):
			return m, func() tea.Msg { return SwitchToMenuMsg{} }

		case key.Matches(msg, OutputKeys.Copy):
			if m.copyText == "" {
				return m, nil
			}
			if err := clipboard.WriteAll(m.copyText); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied %s", m.copyText), false)
			}
			return m, nil

		case key.Matches(msg, OutputKeys.Edit):
			if m.editPath == "" {
				return m, nil
			}
			path := m.editPath
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the output view
func (m *OutputModel) View() string {
	bindings := []key.Binding{OutputKeys.Up, OutputKeys.Down}
	if m.copyText != "" {
		bindings = append(bindings, OutputKeys.Copy)
	}
	if m.editPath != "" {
		bindings = append(bindings, OutputKeys.Edit)
	}
	bindings = append(bindings, OutputKeys.Back)

	return NewViewBuilder().
		Title(m.title).
		Line(m.viewport.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(bindings...).
		String()
}
