package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodePayload parses a JSON request body. An empty body and a top-level array both yield an empty
// Payload, so they fail validation as missing fields. Malformed JSON, trailing data after the first
// value, and a top-level primitive are errors.
func DecodePayload(body []byte) (Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Payload{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode order payload: %w", err)
	}

	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode order payload: unexpected data after JSON value")
	}

	switch val := v.(type) {
	case map[string]any:
		return Payload(val), nil
	case []any:
		return Payload{}, nil
	default:
		return nil, fmt.Errorf("decode order payload: top-level value must be an object or array, got %T", v)
	}
}
