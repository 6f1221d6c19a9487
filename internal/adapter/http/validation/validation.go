package validation

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrEmptyUpdate marks a partial-update body carrying no updatable fields.
var ErrEmptyUpdate = errors.New("update payload has no fields")

// FieldError names the offending field of a rejected payload.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "invalid field: " + e.Field
}

func unknownField(raw map[string]json.RawMessage, allowed map[string]struct{}) (string, bool) {
	for key := range raw {
		if _, ok := allowed[key]; !ok {
			return key, true
		}
	}
	return "", false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
