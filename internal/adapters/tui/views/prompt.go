package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"courseplanner/internal/adapters/tui/styles"
)

// PromptKeyMap defines key bindings for single-line prompts
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var PromptKeys = PromptKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptModel asks for one value, such as a catalog path or a course number
type PromptModel struct {
	ViewState
	purpose PromptPurpose
	title   string
	label   string
	input   textinput.Model
}

// NewPromptModel creates an idle prompt
func NewPromptModel() *PromptModel {
	input := textinput.New()
	input.CharLimit = 256
	return &PromptModel{input: input}
}

// Open resets the prompt for a new question with an optional prefilled value
func (m *PromptModel) Open(purpose PromptPurpose, title, label, placeholder, value string) {
	m.ClearMessage()
	m.purpose = purpose
	m.title = title
	m.label = label
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// Purpose returns what the prompt is currently asking for
func (m *PromptModel) Purpose() PromptPurpose {
	return m.purpose
}

// Value returns the trimmed input
func (m *PromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Init starts the cursor blink
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PromptKeys.Cancel):
			m.input.Blur()
			return m, func() tea.Msg { return SwitchToMenuMsg{} }

		case key.Matches(msg, PromptKeys.Submit):
			value := m.Value()
			if value == "" {
				m.SetMessage(m.label+" is required", true)
				return m, nil
			}
			m.input.Blur()
			purpose := m.purpose
			return m, func() tea.Msg {
				return PromptSubmitMsg{Purpose: purpose, Value: value}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m *PromptModel) View() string {
	return NewViewBuilder().
		Title(m.title).
		Line(styles.InputLabel.Render(m.label)).
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(PromptKeys.Submit, PromptKeys.Cancel).
		String()
}
