package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"courseplanner/internal/adapters/report"
	"courseplanner/internal/adapters/tui/views"
	"courseplanner/internal/application"
	"courseplanner/internal/application/commands"
	"courseplanner/internal/ctxlog"
	"courseplanner/internal/domain"
	"courseplanner/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewPrompt
	ViewOutput
	ViewSearch
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ctx         context.Context
	session     *application.Session
	source      ports.CourseSource
	editor      ports.EditorOpener
	catalogPath string

	state  ViewState
	menu   *views.MenuModel
	prompt *views.PromptModel
	output *views.OutputModel
	search *views.SearchModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. catalogPath prefills the load prompt.
// ed may be nil, which disables editing the catalog.
func NewApp(ctx context.Context, session *application.Session, source ports.CourseSource, ed ports.EditorOpener, catalogPath string) *App {
	menu := views.NewMenuModel()
	menu.SetLoaded(session.Loaded())

	return &App{
		ctx:         ctx,
		session:     session,
		source:      source,
		editor:      ed,
		catalogPath: catalogPath,
		state:       ViewMenu,
		menu:        menu,
		prompt:      views.NewPromptModel(),
		output:      views.NewOutputModel(),
		search:      views.NewSearchModel(session),
		help:        views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

type loadFinishedMsg struct {
	path    string
	summary domain.LoadSummary
}

type editorFinishedMsg struct {
	path string
	err  error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, msg.Height)
		a.prompt.SetSize(msg.Width, msg.Height)
		a.output.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case views.MenuSelectMsg:
		return a, a.runAction(msg.Action)

	case views.SwitchToMenuMsg:
		a.state = ViewMenu
		return a, nil

	case views.PromptSubmitMsg:
		switch msg.Purpose {
		case views.PromptLoad:
			a.catalogPath = msg.Value
			return a, a.load(msg.Value)
		case views.PromptCourse:
			a.showCourse(msg.Value)
		}
		return a, nil

	case views.ShowCourseMsg:
		a.showCourse(msg.ID)
		return a, nil

	case loadFinishedMsg:
		a.menu.SetLoaded(a.session.Loaded())
		a.output.Show("Load Summary", report.Summary(msg.summary), "", msg.path)
		if msg.summary.SourceFailed() {
			a.output.SetMessage("Catalog could not be read; previous courses kept", true)
		}
		a.state = ViewOutput
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.output.SetMessage(fmt.Sprintf("Editor: %v", msg.err), true)
			return a, nil
		}
		return a, a.load(msg.path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewMenu:
		_, cmd = a.menu.Update(msg)
	case ViewPrompt:
		_, cmd = a.prompt.Update(msg)
	case ViewOutput:
		_, cmd = a.output.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) runAction(action views.MenuAction) tea.Cmd {
	switch action {
	case views.ActionLoad:
		a.prompt.Open(views.PromptLoad, "Load Data Structure", "Catalog file", "courses.csv", a.catalogPath)
		a.state = ViewPrompt
		return a.prompt.Init()

	case views.ActionList:
		list, err := commands.NewListCoursesCommand(a.session).Execute(a.ctx)
		if err != nil {
			a.menu.SetMessage(err.Error(), true)
			return nil
		}
		a.output.Show("Course List", report.Schedule(list.Courses, list.Elapsed), "", a.catalogPath)
		a.state = ViewOutput
		return nil

	case views.ActionCourse:
		a.prompt.Open(views.PromptCourse, "Print Course", "What course do you want to know about?", "CSCI300", "")
		a.state = ViewPrompt
		return a.prompt.Init()

	case views.ActionSearch:
		a.search.Reset()
		a.state = ViewSearch
		return a.search.Init()

	case views.ActionHelp:
		a.state = ViewHelp
		return nil

	case views.ActionExit:
		return tea.Quit
	}
	return nil
}

// load reads the catalog off the UI goroutine
func (a *App) load(path string) tea.Cmd {
	ctx, session, source := a.ctx, a.session, a.source
	return func() tea.Msg {
		summary := commands.NewLoadCommand(source, session, path).Execute(ctx)
		return loadFinishedMsg{path: path, summary: summary}
	}
}

func (a *App) showCourse(id string) {
	detail, err := commands.NewShowCourseCommand(a.session, id).Execute(a.ctx)
	switch {
	case errors.Is(err, application.ErrNotFound):
		a.output.Show("Print Course", fmt.Sprintf("Course %s not found.\n", domain.Normalize(id)), "", "")
	case err != nil:
		ctxlog.FromContext(a.ctx).Warn("show course failed", "id", id, "error", err)
		a.output.Show("Print Course", "", "", "")
		a.output.SetMessage(err.Error(), true)
	default:
		a.output.Show("Print Course", report.Course(detail), detail.Course.ID.String(), "")
	}
	a.state = ViewOutput
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		a.output.SetMessage("No editor configured", true)
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewPrompt:
		return a.prompt.View()
	case ViewOutput:
		return a.output.View()
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.menu.View()
	}
}
