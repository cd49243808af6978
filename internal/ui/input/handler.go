package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dropdown/internal/ui/input/types"
)

// KeyMap holds the bindings shown in the help line. Widget keys are fixed by
// the listbox keyboard model; host keys can be rebound.
type KeyMap struct {
	Toggle   key.Binding
	Move     key.Binding
	Jump     key.Binding
	Close    key.Binding
	Next     key.Binding
	Language key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open/select"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys("home", "end", "pgup", "pgdown"),
			key.WithHelp("home/end", "first/last"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select & leave"),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Move, k.Close, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Move, k.Jump},
		{k.Close, k.Next},
		{k.Language, k.Reload, k.Help, k.Quit},
	}
}

// Handler turns bubbletea key messages into widget keys or host actions
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey translates msg. Host bindings win over widget keys. Pasted text
// arrives as one message and yields one key per rune.
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Key, types.Action) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return nil, types.QuitAction{Force: true}
	case key.Matches(msg, h.keys.Language):
		return nil, types.CycleLanguageAction{}
	case key.Matches(msg, h.keys.Reload):
		return nil, types.ReloadAction{}
	case key.Matches(msg, h.keys.Help):
		return nil, types.ToggleHelpAction{}
	}

	switch msg.Type {
	case tea.KeyEnter:
		return []types.Key{types.Code(types.KeyEnter)}, nil
	case tea.KeySpace:
		return []types.Key{types.Code(types.KeySpace)}, nil
	case tea.KeyUp:
		return []types.Key{types.Code(types.KeyUp)}, nil
	case tea.KeyDown:
		return []types.Key{types.Code(types.KeyDown)}, nil
	case tea.KeyHome:
		return []types.Key{types.Code(types.KeyHome)}, nil
	case tea.KeyEnd:
		return []types.Key{types.Code(types.KeyEnd)}, nil
	case tea.KeyPgUp:
		return []types.Key{types.Code(types.KeyPageUp)}, nil
	case tea.KeyPgDown:
		return []types.Key{types.Code(types.KeyPageDown)}, nil
	case tea.KeyEsc:
		return []types.Key{types.Code(types.KeyEscape)}, nil
	case tea.KeyTab:
		return []types.Key{types.Code(types.KeyTab)}, nil
	case tea.KeyRunes:
		// alt+letter is a shortcut, not typing
		if msg.Alt {
			return nil, nil
		}
		keys := make([]types.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == ' ' {
				keys = append(keys, types.Code(types.KeySpace))
				continue
			}
			keys = append(keys, types.Rune(r))
		}
		return keys, nil
	}
	return nil, nil
}
