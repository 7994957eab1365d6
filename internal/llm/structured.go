package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SchemaValidator runs domain checks on a decoded value.
type SchemaValidator[T any] func(T) error

// DecodeJSON decodes raw model output that must be exactly one JSON value,
// give or take surrounding whitespace. Prose, markdown fences, trailing
// characters or a second value are all ErrInvalidOutput.
//
// When schema is non-nil the value is checked against it before decoding
// into T, and validator runs last. Field types are never coerced.
func DecodeJSON[T any](raw string, schema *Schema, validator SchemaValidator[T]) (T, error) {
	var out T

	doc, err := singleDocument(raw)
	if err != nil {
		return out, err
	}

	if schema != nil {
		var generic any
		dec := json.NewDecoder(bytes.NewReader(doc))
		dec.UseNumber()
		if err := dec.Decode(&generic); err != nil {
			return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		if err := schema.Check(generic); err != nil {
			return out, fmt.Errorf("%w: schema mismatch: %v", ErrInvalidOutput, err)
		}
	}

	if err := json.Unmarshal(doc, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator == nil {
		return out, nil
	}
	if err := validator(out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
	}
	return out, nil
}

// singleDocument returns the one JSON value in raw. Anything after it other
// than whitespace is rejected.
func singleDocument(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	var msg json.RawMessage
	if err := dec.Decode(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value at offset %d", ErrInvalidOutput, dec.InputOffset())
	}
	return msg, nil
}
