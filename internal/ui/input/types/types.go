package types

// KeyCode names a key the widget reacts to
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeySpace
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyTab
	KeyRune // a printable character, see Key.Rune
)

// Key is a host-independent keystroke
type Key struct {
	Code KeyCode
	Rune rune
}

// Rune builds a printable keystroke
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Code builds a named keystroke
func Code(c KeyCode) Key {
	return Key{Code: c}
}

var codeNames = map[KeyCode]string{
	KeyUnknown:  "unknown",
	KeyEnter:    "enter",
	KeySpace:    "space",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pgup",
	KeyPageDown: "pgdown",
	KeyEscape:   "esc",
	KeyTab:      "tab",
}

// String returns the key name, or the character for printable keys
func (k Key) String() string {
	if k.Code == KeyRune {
		return string(k.Rune)
	}
	return codeNames[k.Code]
}
