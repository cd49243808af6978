package search

import (
	"strings"
	"time"
)

// Buffer accumulates printable keystrokes for type-ahead search
type Buffer struct {
	state *State
	now   Clock
}

// NewBuffer creates an empty buffer. A nil clock uses time.Now.
func NewBuffer(now Clock) *Buffer {
	if now == nil {
		now = time.Now
	}
	return &Buffer{
		state: &State{},
		now:   now,
	}
}

// Append records a keystroke and returns the lowercased buffer. The buffer is
// emptied first when more than ResetGap passed since the previous keystroke.
func (b *Buffer) Append(r rune) string {
	now := b.now()
	if !b.state.LastKeypress.IsZero() && now.Sub(b.state.LastKeypress) > ResetGap {
		b.state.Text = ""
	}
	b.state.Text += strings.ToLower(string(r))
	b.state.LastKeypress = now
	return b.state.Text
}

// Text returns the current buffer contents
func (b *Buffer) Text() string {
	return b.state.Text
}

// Reset empties the buffer
func (b *Buffer) Reset() {
	b.state.Text = ""
	b.state.LastKeypress = time.Time{}
}
