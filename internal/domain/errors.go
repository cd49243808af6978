package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("invalid choice")
	ErrDuplicateID    = errors.New("duplicate choice id")
	ErrNotFound       = errors.New("choice not found")
	ErrMalformedInput = errors.New("malformed choice payload")
)

// ValidationError reports a choice missing a required field
type ValidationError struct {
	Field  string
	Choice Choice
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s (id=%q text=%q)", ErrValidation, e.Field, e.Choice.ID, e.Choice.Text)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateIDError reports an insertion whose id is already taken
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateID, e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// NotFoundError reports a remove or select on an unknown id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// MalformedInputError reports an externally supplied list that could not be parsed
type MalformedInputError struct {
	Format SourceFormat
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrMalformedInput, e.Format, e.Err)
}

// Unwrap exposes both the sentinel and the parser error.
func (e *MalformedInputError) Unwrap() []error { return []error{ErrMalformedInput, e.Err} }

// ValidateChoice checks the fields every stored choice must carry
func ValidateChoice(c Choice) error {
	if c.ID == "" {
		return &ValidationError{Field: "id", Choice: c}
	}
	if c.Text == "" {
		return &ValidationError{Field: "text", Choice: c}
	}
	return nil
}
