package services

import (
	"encoding/json"
	"fmt"
)

// toMap converts a struct to its JSON map form for storage in a JSON column.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value into map: %w", err)
	}
	return m, nil
}

// fromMap decodes a JSON map column back into a typed struct.
func fromMap(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode map: %w", err)
	}
	return nil
}
