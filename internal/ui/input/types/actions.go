package types

// Action is a host-level command that is not a widget keystroke
type Action interface {
	Type() string
}

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type CycleLanguageAction struct{}

func (a CycleLanguageAction) Type() string { return "cycle_language" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }
