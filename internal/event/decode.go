package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. In-process payloads are already T;
// anything else (a dead letter replay, an SSE client echo) goes through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("encode payload: %w", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode payload: %w", err)
	}
	return result, nil
}
