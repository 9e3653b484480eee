package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"courseplanner/internal/adapters/tui/styles"
)

// MenuKeyMap defines key bindings for the main menu
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var MenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

type menuItem struct {
	shortcut  string
	label     string
	action    MenuAction
	needsLoad bool
}

var menuItems = []menuItem{
	{shortcut: "1", label: "Load Data Structure", action: ActionLoad},
	{shortcut: "2", label: "Print Course List", action: ActionList, needsLoad: true},
	{shortcut: "3", label: "Print Course", action: ActionCourse, needsLoad: true},
	{shortcut: "4", label: "Search Courses", action: ActionSearch, needsLoad: true},
	{shortcut: "9", label: "Exit", action: ActionExit},
}

// MenuModel is the main menu. Entries that read the catalog stay disabled
// until a load has published at least one course.
type MenuModel struct {
	ViewState
	cursor int
	loaded bool
}

// NewMenuModel creates the main menu
func NewMenuModel() *MenuModel {
	return &MenuModel{}
}

// SetLoaded enables or disables the entries that need a catalog
func (m *MenuModel) SetLoaded(loaded bool) {
	m.loaded = loaded
}

// Loaded reports whether catalog entries are enabled
func (m *MenuModel) Loaded() bool {
	return m.loaded
}

// Init initializes the menu
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, MenuKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, MenuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, MenuKeys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, MenuKeys.Select):
			return m, m.choose(menuItems[m.cursor])

		case key.Matches(msg, MenuKeys.Help):
			return m, selectCmd(ActionHelp)
		}

		for i, item := range menuItems {
			if msg.String() == item.shortcut {
				m.cursor = i
				return m, m.choose(item)
			}
		}
	}

	return m, nil
}

func (m *MenuModel) choose(item menuItem) tea.Cmd {
	if item.needsLoad && !m.loaded {
		m.SetMessage("Load the catalog first (option 1)", true)
		return nil
	}
	return selectCmd(item.action)
}

func selectCmd(action MenuAction) tea.Cmd {
	return func() tea.Msg {
		return MenuSelectMsg{Action: action}
	}
}

// View renders the menu
func (m *MenuModel) View() string {
	vb := NewViewBuilder().
		Title("Course Planner").
		Subtitle("Welcome to the course planner.")

	for i, item := range menuItems {
		text := fmt.Sprintf("%s. %s", item.shortcut, item.label)
		switch {
		case i == m.cursor:
			vb.Line(styles.NodeSelected.Render(text))
		case item.needsLoad && !m.loaded:
			vb.Line(styles.Disabled.Render(text))
		default:
			vb.Line(styles.MenuItem.Render(text))
		}
	}

	return vb.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(MenuKeys.Up, MenuKeys.Down, MenuKeys.Select, MenuKeys.Help, MenuKeys.Quit).
		String()
}
