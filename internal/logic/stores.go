package logic

import (
	"slices"

	"dropdown/internal/domain"
)

// MemoryChoiceStore is an in-memory implementation of ChoiceStore.
// It is owned by a single widget and is not safe for concurrent use.
type MemoryChoiceStore struct {
	choices    []domain.Choice
	selectedID string
	changeFn   func()
}

// NewMemoryChoiceStore creates an empty store
func NewMemoryChoiceStore() *MemoryChoiceStore {
	return &MemoryChoiceStore{
		choices: make([]domain.Choice, 0),
	}
}

// SetChangeFunction sets the function called after every successful mutation
func (s *MemoryChoiceStore) SetChangeFunction(fn func()) {
	s.changeFn = fn
}

// Add appends a choice to the end of the list
func (s *MemoryChoiceStore) Add(choice domain.Choice) error {
	if err := domain.ValidateChoice(choice); err != nil {
		return err
	}
	if s.IndexOf(choice.ID) >= 0 {
		return &domain.DuplicateIDError{ID: choice.ID}
	}
	s.choices = append(s.choices, choice)
	s.changed()
	return nil
}

// Remove deletes the choice with the given id
func (s *MemoryChoiceStore) Remove(id string) error {
	index := s.IndexOf(id)
	if index < 0 {
		return &domain.NotFoundError{ID: id}
	}
	s.choices = slices.Delete(s.choices, index, index+1)
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.changed()
	return nil
}

// ReplaceAll rebuilds the list from scratch. Invalid and duplicate entries are
// skipped and reported. The first entry flagged Selected becomes the
// selection; without one there is no selection.
func (s *MemoryChoiceStore) ReplaceAll(choices []domain.Choice) []error {
	var skipped []error
	next := make([]domain.Choice, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	selectedID := ""

	for _, c := range choices {
		if err := domain.ValidateChoice(c); err != nil {
			skipped = append(skipped, err)
			continue
		}
		if _, dup := seen[c.ID]; dup {
			skipped = append(skipped, &domain.DuplicateIDError{ID: c.ID})
			continue
		}
		seen[c.ID] = struct{}{}
		next = append(next, c)
		if c.Selected && selectedID == "" {
			selectedID = c.ID
		}
	}

	s.choices = next
	s.selectedID = selectedID
	s.changed()
	return skipped
}

// Find returns the choice with the given id
func (s *MemoryChoiceStore) Find(id string) (domain.Choice, bool) {
	index := s.IndexOf(id)
	if index < 0 {
		return domain.Choice{}, false
	}
	return s.choices[index], true
}

// IndexOf returns the position of id, or -1
func (s *MemoryChoiceStore) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.choices, func(c domain.Choice) bool {
		return c.ID == id
	})
}

// At returns the choice at index
func (s *MemoryChoiceStore) At(index int) (domain.Choice, bool) {
	if index < 0 || index >= len(s.choices) {
		return domain.Choice{}, false
	}
	return s.choices[index], true
}

func (s *MemoryChoiceStore) Len() int {
	return len(s.choices)
}

// Choices returns a copy of the list
func (s *MemoryChoiceStore) Choices() []domain.Choice {
	return slices.Clone(s.choices)
}

// Selected returns the currently selected choice, if any
func (s *MemoryChoiceStore) Selected() (domain.Choice, bool) {
	return s.Find(s.selectedID)
}

// SetSelected makes id the authoritative selection
func (s *MemoryChoiceStore) SetSelected(id string) error {
	if s.IndexOf(id) < 0 {
		return &domain.NotFoundError{ID: id}
	}
	s.selectedID = id
	return nil
}

func (s *MemoryChoiceStore) ClearSelected() {
	s.selectedID = ""
}

func (s *MemoryChoiceStore) changed() {
	if s.changeFn != nil {
		s.changeFn()
	}
}
