package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail is surfaced when a write would reuse an email that
	// another account already holds.
	ErrDuplicateEmail = errors.New("email already taken")

	// ErrInvalidCredentials deliberately covers both "unknown email" and
	// "wrong password" so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type FieldErrorKind string

const (
	FieldMissing  FieldErrorKind = "missing"
	FieldFormat   FieldErrorKind = "invalid format"
	FieldTooShort FieldErrorKind = "too short"
	FieldTooLong  FieldErrorKind = "too long"
)

// FieldError is a single validation violation. Validation short-circuits, so
// at most one is produced per call.
type FieldError struct {
	Field string
	Kind  FieldErrorKind
	Min   int
	Max   int
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case FieldTooShort:
		return fmt.Sprintf("%s is too short (min %d characters)", e.Field, e.Min)
	case FieldTooLong:
		return fmt.Sprintf("%s is too long (max %d bytes)", e.Field, e.Max)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

func MissingField(field string) error { return &FieldError{Field: field, Kind: FieldMissing} }

func InvalidFormat(field string) error { return &FieldError{Field: field, Kind: FieldFormat} }

func TooShort(field string, min int) error {
	return &FieldError{Field: field, Kind: FieldTooShort, Min: min}
}

func TooLong(field string, max int) error {
	return &FieldError{Field: field, Kind: FieldTooLong, Max: max}
}

// NotFoundError names the id or query that produced no match.
type NotFoundError struct{ Query string }

func (e *NotFoundError) Error() string { return fmt.Sprintf("account %s not found", e.Query) }

func NotFound(query string) error { return &NotFoundError{Query: query} }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
