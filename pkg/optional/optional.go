package optional

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Field distinguishes the three states a JSON object member can be in:
// absent from the payload, present with an explicit null, or present with a
// value. The zero Field means the member was absent.
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] { return Field[T]{value: v, set: true} }

// Null returns a Field that was supplied as explicit null.
func Null[T any]() Field[T] { return Field[T]{set: true, null: true} }

// Set reports whether the member was present in the payload at all,
// including as explicit null.
func (f Field[T]) Set() bool { return f.set }

// IsNull reports whether the member was supplied as explicit null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Value returns the supplied value. ok is false when the member was absent
// or null; the returned value is then the zero value of T.
func (f Field[T]) Value() (v T, ok bool) {
	if !f.set || f.null {
		return v, false
	}
	return f.value, true
}

// Or returns the supplied value, or fallback when the member was absent
// or null.
func (f Field[T]) Or(fallback T) T {
	if v, ok := f.Value(); ok {
		return v
	}
	return fallback
}

// UnmarshalJSON is only invoked for members present in the payload, which is
// what makes the absent/null distinction observable.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if bytes.Equal(b, nullLiteral) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return nullLiteral, nil
	}
	return json.Marshal(f.value)
}
