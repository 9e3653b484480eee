package views

// MenuAction identifies a main menu entry
type MenuAction int

const (
	ActionLoad MenuAction = iota
	ActionList
	ActionCourse
	ActionSearch
	ActionHelp
	ActionExit
)

// PromptPurpose tells the app what a submitted prompt value is for
type PromptPurpose int

const (
	PromptLoad PromptPurpose = iota
	PromptCourse
)

// MenuSelectMsg is sent when a menu entry is chosen
type MenuSelectMsg struct {
	Action MenuAction
}

// PromptSubmitMsg carries the value entered in a prompt
type PromptSubmitMsg struct {
	Purpose PromptPurpose
	Value   string
}

// ShowCourseMsg asks the app to display a single course
type ShowCourseMsg struct {
	ID string
}

// OpenEditorMsg asks the app to open path in the external editor
type OpenEditorMsg struct {
	Path string
}

// SwitchToMenuMsg returns to the main menu
type SwitchToMenuMsg struct{}
