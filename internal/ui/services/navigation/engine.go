// Package navigation computes highlight movement over a choice list.
// Every function is pure: it borrows the list for one call and never
// retains it.
package navigation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dropdown/internal/domain"
)

// step walks one full cycle from current in dir and returns the first
// enabled index, or NotFound. A current of -1 means "before the start"
// for Down and "past the end" for Up.
func step(list []domain.Choice, current int, dir Direction) int {
	n := len(list)
	if n == 0 || dir == 0 {
		return NotFound
	}
	if current < 0 || current >= n {
		if dir > 0 {
			current = -1
		} else {
			current = n
		}
	}

	index := current
	for i := 0; i < n; i++ {
		index = ((index+int(dir))%n + n) % n
		if list[index].Enabled() {
			return index
		}
	}
	return NotFound
}

// MoveHighlight steps the highlight by one in dir, wrapping and skipping
// disabled choices. It returns current unchanged when nothing is reachable.
func MoveHighlight(list []domain.Choice, current int, dir Direction) int {
	next := step(list, current, dir)
	if next == NotFound {
		return current
	}
	return next
}

// CycleHighlight is MoveHighlight for a closed list: the landed-on choice is
// to be selected. ok is false when no enabled choice was reached, in which
// case the index is returned unchanged and nothing must be selected.
func CycleHighlight(list []domain.Choice, current int, dir Direction) (index int, ok bool) {
	next := step(list, current, dir)
	if next == NotFound {
		return current, false
	}
	return next, true
}

// FindByPrefix scans cyclically from start for an enabled choice whose
// lowercased text begins with query's first character, or with the whole
// query when matchWhole is set.
func FindByPrefix(list []domain.Choice, query string, start int, matchWhole bool) int {
	n := len(list)
	if n == 0 || query == "" {
		return NotFound
	}
	lower := cases.Lower(language.Und)
	query = lower.String(query)
	if !matchWhole {
		for _, r := range query {
			query = string(r)
			break
		}
	}
	if start < 0 {
		start = 0
	}

	for i := 0; i < n; i++ {
		index := (start + i) % n
		c := list[index]
		if c.Disabled {
			continue
		}
		if strings.HasPrefix(lower.String(c.Text), query) {
			return index
		}
	}
	return NotFound
}

// TypeAhead resolves a search buffer to an index. A single character finds
// the next choice starting with it after current; a longer buffer matches as
// a whole prefix from the top of the list.
func TypeAhead(list []domain.Choice, buffer string, current int) int {
	if len([]rune(buffer)) == 1 {
		return FindByPrefix(list, buffer, current+1, false)
	}
	return FindByPrefix(list, buffer, 0, true)
}

// First returns the first enabled index, or NotFound
func First(list []domain.Choice) int {
	return step(list, NotFound, DirectionDown)
}

// Last returns the last enabled index, or NotFound
func Last(list []domain.Choice) int {
	return step(list, NotFound, DirectionUp)
}

// Valid reports whether index points into list
func Valid(list []domain.Choice, index int) bool {
	return index >= 0 && index < len(list)
}
