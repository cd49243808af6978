package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"dropdown/internal/ui/input/types"
)

func TestHandleKeyWidgetKeys(t *testing.T) {
	h := New()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.KeyCode
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, types.KeyEnter},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, types.KeySpace},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, types.KeyUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, types.KeyDown},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, types.KeyHome},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, types.KeyEnd},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, types.KeyPageUp},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, types.KeyPageDown},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, types.KeyEscape},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.KeyTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, action := h.HandleKey(tt.msg)
			assert.Nil(t, action)
			assert.Equal(t, []types.Key{types.Code(tt.want)}, keys)
		})
	}
}

func TestHandleKeyRunes(t *testing.T) {
	h := New()

	keys, action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b a")})

	assert.Nil(t, action)
	assert.Equal(t, []types.Key{types.Rune('b'), types.Code(types.KeySpace), types.Rune('a')}, keys)

	keys, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.Empty(t, keys)
}

func TestHandleKeyHostActions(t *testing.T) {
	h := New()

	_, action := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, types.QuitAction{Force: true}, action)

	_, action = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, types.CycleLanguageAction{}, action)

	_, action = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, types.ReloadAction{}, action)

	_, action = h.HandleKey(tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, types.ToggleHelpAction{}, action)
}

func TestHandleKeyIgnoresUnboundKeys(t *testing.T) {
	h := New()

	keys, action := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})

	assert.Empty(t, keys)
	assert.Nil(t, action)
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 3)
}
