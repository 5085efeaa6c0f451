package errorvalues

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrPlaceNotFound = fmt.Errorf("place %w", ErrNotFound)
	ErrItemNotFound  = fmt.Errorf("item %w", ErrNotFound)

	ErrUsernameTaken = errors.New("user with such username already exists")
	ErrEmailTaken    = errors.New("user with such email already exists")
	ErrItemExists    = errors.New("item with such name already exists in place")
	ErrOwnerNotFound = errors.New("owner doesn't exist")

	ErrWrongCredentials = errors.New("wrong username or password")
	ErrWrongOwner       = errors.New("resource has different owner")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenRevoked     = errors.New("token revoked")
)

// ValidationError carries per-field messages keyed by form field name.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (ve *ValidationError) Add(field, message string) {
	ve.Fields[field] = append(ve.Fields[field], message)
}

func (ve *ValidationError) Empty() bool {
	return len(ve.Fields) == 0
}

func (ve *ValidationError) Error() string {
	fields := make([]string, 0, len(ve.Fields))
	for f := range ve.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(ve.Fields[f], " "))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FieldValidationError is a shortcut for a single-field ValidationError.
func FieldValidationError(field, message string) *ValidationError {
	ve := NewValidationError()
	ve.Add(field, message)
	return ve
}
