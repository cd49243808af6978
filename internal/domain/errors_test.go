package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateChoice(t *testing.T) {
	assert.NoError(t, ValidateChoice(Choice{ID: "o1", Text: "Apple"}))

	err := ValidateChoice(Choice{Text: "Apple"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateChoice(Choice{ID: "o1"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Field)
}

func TestMalformedInputErrorUnwrapsBoth(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := error(&MalformedInputError{Format: FormatJSON, Err: cause})

	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "json")
}

func TestNotFoundAndDuplicate(t *testing.T) {
	assert.ErrorIs(t, &NotFoundError{ID: "x"}, ErrNotFound)
	assert.ErrorIs(t, &DuplicateIDError{ID: "x"}, ErrDuplicateID)
	assert.Equal(t, `duplicate choice id: "o1"`, (&DuplicateIDError{ID: "o1"}).Error())
}
