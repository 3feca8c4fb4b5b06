package cssel

import (
	"encoding/json"
	"fmt"
)

// EncodeJSON serializes an arbitrary value graph to its JSON text form.
// It is independent of the selector builder.
func EncodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	return string(data), nil
}

// DecodeJSON constructs a value of shape T from JSON text.
func DecodeJSON[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("decode: %w", err)
	}
	return v, nil
}
