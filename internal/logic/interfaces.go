package logic

import "dropdown/internal/domain"

// ChoiceStore owns the ordered choice list and the authoritative selection.
// It never looks at highlight state; callers revalidate their indices after
// every mutation.
type ChoiceStore interface {
	Add(choice domain.Choice) error
	Remove(id string) error
	ReplaceAll(choices []domain.Choice) []error

	Find(id string) (domain.Choice, bool)
	IndexOf(id string) int
	At(index int) (domain.Choice, bool)
	Len() int
	Choices() []domain.Choice

	Selected() (domain.Choice, bool)
	SetSelected(id string) error
	ClearSelected()

	SetChangeFunction(fn func())
}
