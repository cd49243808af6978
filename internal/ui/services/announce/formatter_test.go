package announce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dropdown/internal/domain"
	"dropdown/internal/i18n"
)

func TestHighlighted(t *testing.T) {
	en, _ := i18n.Lookup("en")
	fr, _ := i18n.Lookup("fr")
	banana := domain.Choice{ID: "o2", Text: "Banana"}

	assert.Equal(t, "Banana highlighted, choice 2 of 3", Highlighted(banana, 1, 3, en))
	assert.Equal(t, "Banana surligné, choix 2 de 3", Highlighted(banana, 1, 3, fr))
}

func TestSelected(t *testing.T) {
	en, _ := i18n.Lookup("en")
	fr, _ := i18n.Lookup("fr-BE")
	apple := domain.Choice{ID: "o1", Text: "Apple"}

	assert.Equal(t, "Apple selected", Selected(apple, en))
	assert.Equal(t, "Apple sélectionné", Selected(apple, fr))
}
