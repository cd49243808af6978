package state

import "dropdown/internal/domain"

// None marks an absent index
const None = -1

// SelectionState is the mutable interaction state of one widget
type SelectionState struct {
	HighlightedIndex           int  // keyboard focus inside the list, None when absent
	PersistentHighlightedIndex int  // index of the last committed selection
	Open                       bool // whether the listbox is shown
}

// NewSelectionState returns the neutral state: closed, nothing highlighted
func NewSelectionState() *SelectionState {
	return &SelectionState{
		HighlightedIndex:           None,
		PersistentHighlightedIndex: None,
	}
}

// HasHighlight reports whether an item is highlighted
func (s *SelectionState) HasHighlight() bool {
	return s.HighlightedIndex != None
}

// Clamp invalidates any index that no longer fits a list of length n
func (s *SelectionState) Clamp(n int) {
	if s.HighlightedIndex < 0 || s.HighlightedIndex >= n {
		s.HighlightedIndex = None
	}
	if s.PersistentHighlightedIndex < 0 || s.PersistentHighlightedIndex >= n {
		s.PersistentHighlightedIndex = None
	}
}

// Row is one rendered listbox option
type Row struct {
	ID          string
	Text        string
	Disabled    bool
	Highlighted bool
	Selected    bool
	PosInSet    int // 1-based
	SetSize     int
}

// Snapshot fully describes the widget after a transition. Renderers get a
// fresh value each time and may diff it against the previous one.
type Snapshot struct {
	Label                      string
	ButtonText                 string
	Open                       bool
	Rows                       []Row
	ActiveDescendant           string // id of the highlighted option, empty when none
	Announcement               string
	HighlightedIndex           int
	PersistentHighlightedIndex int
	SelectedID                 string
	Language                   string
}

// BuildSnapshot derives a Snapshot from the list and state
func BuildSnapshot(list []domain.Choice, selectedID string, s SelectionState, label, placeholder, announcement, lang string) Snapshot {
	snap := Snapshot{
		Label:                      label,
		ButtonText:                 label,
		Open:                       s.Open,
		Rows:                       make([]Row, 0, len(list)),
		Announcement:               announcement,
		HighlightedIndex:           s.HighlightedIndex,
		PersistentHighlightedIndex: s.PersistentHighlightedIndex,
		SelectedID:                 selectedID,
		Language:                   lang,
	}
	if snap.ButtonText == "" {
		snap.ButtonText = placeholder
	}

	for i, c := range list {
		row := Row{
			ID:          c.ID,
			Text:        c.Text,
			Disabled:    c.Disabled,
			Highlighted: i == s.HighlightedIndex,
			Selected:    selectedID != "" && c.ID == selectedID,
			PosInSet:    i + 1,
			SetSize:     len(list),
		}
		if row.Highlighted {
			snap.ActiveDescendant = c.ID
		}
		if row.Selected {
			snap.ButtonText = c.Text
		}
		snap.Rows = append(snap.Rows, row)
	}
	return snap
}
