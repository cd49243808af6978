package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FlushMsg asks the model to run queued continuations
type FlushMsg struct{}

// Queue holds continuations deferred to the next tick, after the current
// update and its render have completed
type Queue struct {
	pending []func()
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Defer schedules fn for the next tick
func (q *Queue) Defer(fn func()) {
	q.pending = append(q.pending, fn)
}

// Pending returns the number of queued continuations
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Flush runs queued continuations in order and returns how many ran.
// Continuations deferred while flushing wait for the next flush.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Cmd returns a command delivering FlushMsg when work is queued
func (q *Queue) Cmd() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	return func() tea.Msg {
		return FlushMsg{}
	}
}
