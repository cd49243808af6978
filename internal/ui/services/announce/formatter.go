// Package announce builds the text pushed to the live region.
package announce

import (
	"fmt"

	"dropdown/internal/domain"
	"dropdown/internal/i18n"
)

// Highlighted describes a highlight move, e.g. "Banana highlighted, choice 2 of 3"
func Highlighted(choice domain.Choice, index, length int, phrases i18n.Phrases) string {
	return fmt.Sprintf("%s %s %d %s %d", choice.Text, phrases.Highlighted, index+1, phrases.Of, length)
}

// Selected describes a commit, e.g. "Banana selected"
func Selected(choice domain.Choice, phrases i18n.Phrases) string {
	return fmt.Sprintf("%s %s", choice.Text, phrases.Selected)
}
