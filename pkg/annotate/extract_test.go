package annotate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_FencedAndBareAreEquivalent(t *testing.T) {
	bare, err := extractJSON(`{"a":1}`)
	require.NoError(t, err)

	fenced, err := extractJSON("```json\n{\"a\":1}\n```")
	require.NoError(t, err)

	assert.Equal(t, bare, fenced, "fenced JSON should parse identically to bare JSON")
}

func TestExtractJSON_PlainFence(t *testing.T) {
	fields, err := extractJSON("```\n{\"title\": \"x\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "x", fields["title"])
}

func TestExtractJSON_SurroundingWhitespace(t *testing.T) {
	fields, err := extractJSON("  \n```json\n{\"summary\": \"short\"}\n```  \n")
	require.NoError(t, err)
	assert.Equal(t, "short", fields["summary"])
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := extractJSON("Sure! Here is the JSON you asked for.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestExtractJSON_FenceOnly(t *testing.T) {
	_, err := extractJSON("```json\n```")
	require.Error(t, err, "an empty fence has no JSON payload")
}

func TestStringField(t *testing.T) {
	fields := map[string]any{"title": "A title", "count": float64(3)}

	title, err := stringField(fields, "title")
	require.NoError(t, err)
	assert.Equal(t, "A title", title)

	_, err = stringField(fields, "tags")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField), "missing key must be classified as ErrMissingField")

	_, err = stringField(fields, "count")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField), "wrong-typed value must be classified as ErrMissingField")
}

func TestStringSlice(t *testing.T) {
	fields := map[string]any{
		"suggested_categories": []any{"a", "b", float64(1), "c"},
		"summary":              "not a list",
	}

	assert.Equal(t, []string{"a", "b", "c"}, stringSlice(fields, "suggested_categories"),
		"non-string elements are skipped")
	assert.Nil(t, stringSlice(fields, "missing"))
	assert.Nil(t, stringSlice(fields, "summary"))
}
