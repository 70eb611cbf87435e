package annotate

import "context"

// CategorySuggestion holds a one-line summary plus suggested categories,
// ordered by relevance. The model is asked for three; the fallback always
// produces exactly three.
type CategorySuggestion struct {
	Summary             string   `json:"summary"`
	SuggestedCategories []string `json:"suggested_categories"`
}

// TitleTagSuggestion holds a generated title and a comma-joined tag string.
// Tags are passed through as-is; no trimming or de-duplication happens here.
type TitleTagSuggestion struct {
	Title string `json:"title"`
	Tags  string `json:"tags"`
}

// ModelClient is the minimal surface of a text-generation backend.
// Implementations live in internal/services (Gemini, OpenAI).
type ModelClient interface {
	// Invoke sends the prompt to the given model and returns the raw reply.
	Invoke(ctx context.Context, prompt, model string, temperature float32) (string, error)
	// Configured reports whether the backend has credentials and can be called.
	Configured() bool
}
