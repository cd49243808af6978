package search

import "time"

// ResetGap is the longest pause between printable keystrokes that still
// extends the current buffer
const ResetGap = 500 * time.Millisecond

// State holds the type-ahead buffer
type State struct {
	Text         string
	LastKeypress time.Time
}

// Clock returns the current time
type Clock func() time.Time
