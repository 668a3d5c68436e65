// Package optional provides presence-aware JSON fields for partial-update
// payloads. A decoded Field distinguishes three states a plain pointer
// cannot: key absent, key present with null, and key present with a value.
package optional

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field wraps a JSON value so presence survives decoding. The zero value
// means the key was absent from the payload.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Of returns a Field carrying value (present, non-null). Intended for tests
// and programmatic patch construction.
func Of[T any](v T) Field[T] { return Field[T]{value: v, present: true} }

// Null returns a Field representing an explicit JSON null.
func Null[T any]() Field[T] { return Field[T]{present: true, null: true} }

// Present reports whether the key appeared in the payload at all.
func (f Field[T]) Present() bool { return f.present }

// Get returns the decoded value and true when the key was present with a
// non-null value. Absent keys and explicit nulls both return false.
func (f Field[T]) Get() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes the zero value a reliable "absent" marker.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// FlexBool decodes from a JSON boolean or from a string such as "true" or
// "FALSE". Clients of the original API sent both forms for the active flag.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw bool
	if err := json.Unmarshal(data, &raw); err == nil {
		*b = FlexBool(raw)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*b = FlexBool(parsed)
	return nil
}
