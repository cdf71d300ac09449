// Package jsonutil provides shared helpers for decoding JSON API payloads:
// contextual error wrapping and required-field checks on envelopes.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// MissingFieldError reports a required object key that was absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response missing %q field", e.Field)
}

// Object holds the raw members of a decoded JSON object.
type Object map[string]json.RawMessage

// UnmarshalObject decodes data as a JSON object without decoding its members.
// A top-level null yields an empty Object.
func UnmarshalObject(data []byte, context string) (Object, error) {
	var obj Object
	if err := UnmarshalWithContext(data, &obj, context); err != nil {
		return nil, err
	}
	return obj, nil
}

// Required decodes the member key, which must be present and non-null;
// otherwise a *MissingFieldError is returned.
func Required[T any](obj Object, key string, context string) (T, error) {
	var zero T
	raw, ok := obj[key]
	if !ok || string(raw) == "null" {
		return zero, &MissingFieldError{Field: key}
	}
	var v T
	if err := UnmarshalWithContext(raw, &v, context+": "+key); err != nil {
		return zero, err
	}
	return v, nil
}

// Optional decodes the member key when it is present and has the right type.
// It reports false, leaving the zero value, when the member is absent, null
// or malformed.
func Optional[T any](obj Object, key string) (T, bool) {
	var v T
	raw, ok := obj[key]
	if !ok || string(raw) == "null" {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// UnmarshalField decodes the value stored under key in a JSON object.
// The document must be an object, and key must be present and non-null;
// otherwise a *MissingFieldError is returned.
func UnmarshalField[T any](data []byte, key string, context string) (T, error) {
	obj, err := UnmarshalObject(data, context)
	if err != nil {
		var zero T
		return zero, err
	}
	return Required[T](obj, key, context)
}
