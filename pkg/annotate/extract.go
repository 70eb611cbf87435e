package annotate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField marks a model reply that parsed as JSON but lacks a key the
// caller requires. Callers use errors.Is to route this to the fallback path.
var ErrMissingField = errors.New("required field missing from model response")

// Models often wrap JSON answers in a markdown code fence even when told not
// to. These are the only markers we strip; longest match first so "```json"
// is not half-stripped by "```".
var openingFences = []string{"```json", "```"}

const closingFence = "```"

// extractJSON parses a model's raw reply into a generic JSON object,
// tolerating a single surrounding markdown fence.
func extractJSON(raw string) (map[string]any, error) {
	s := strings.TrimSpace(raw)
	for _, fence := range openingFences {
		if strings.HasPrefix(s, fence) {
			s = s[len(fence):]
			break
		}
	}
	s = strings.TrimSuffix(s, closingFence)
	s = strings.TrimSpace(s)

	var fields map[string]any
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	return fields, nil
}

// stringField extracts a required string value from a parsed reply.
func stringField(fields map[string]any, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrMissingField, key)
	}
	return s, nil
}

// stringSlice extracts a list of strings, skipping non-string elements.
// Missing or malformed lists yield nil; the summarize path treats the
// category list as best-effort.
func stringSlice(fields map[string]any, key string) []string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
