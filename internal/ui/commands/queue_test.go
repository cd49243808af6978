package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushRunsInOrder(t *testing.T) {
	q := NewQueue()
	var got []int
	q.Defer(func() { got = append(got, 1) })
	q.Defer(func() { got = append(got, 2) })

	require.NotNil(t, q.Cmd())
	assert.IsType(t, FlushMsg{}, q.Cmd()())
	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []int{1, 2}, got)
	assert.Nil(t, q.Cmd())
}

func TestDeferDuringFlushWaits(t *testing.T) {
	q := NewQueue()
	ran := 0
	q.Defer(func() {
		q.Defer(func() { ran++ })
	})

	assert.Equal(t, 1, q.Flush())
	assert.Equal(t, 0, ran)
	assert.Equal(t, 1, q.Pending())
	q.Flush()
	assert.Equal(t, 1, ran)
}
