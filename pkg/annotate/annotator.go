package annotate

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Low temperatures favour determinism for structured-output tasks.
const (
	summarizeTemperature float32 = 0.2
	titleTagTemperature  float32 = 0.3

	// DefaultTimeout bounds a single model invocation so an unresponsive
	// backend cannot stall a caller; a timed-out call falls back like any
	// other invocation failure.
	DefaultTimeout = 15 * time.Second
)

const summarizePromptTemplate = `Analyze the prompt below and produce a short one-line summary (summary) together with the three categories (suggested_categories) most relevant to it.
{{CATEGORY_HINT}} Suggested categories do not have to be limited to the existing ones, but use them as a reference.

Respond with exactly the following JSON shape:
{
  "summary": "(one-line summary here)",
  "suggested_categories": ["(category 1)", "(category 2)", "(category 3)"]
}

Prompt:
---
{{CONTENT}}
---`

const titleTagPromptTemplate = `Analyze the prompt below and generate the best title (title) and tags (tags) for it.
Respond with exactly the following JSON shape:
{
  "title": "(title here)",
  "tags": "(comma-separated tags here)"
}

Prompt:
---
{{CONTENT}}
---`

// Annotator orchestrates the AI-assisted annotation of prompt content:
// build a task prompt, invoke the model, extract structured fields, and fall
// back to the deterministic heuristics on any failure. Both public operations
// are total; no model-availability problem ever reaches the caller.
type Annotator struct {
	client  ModelClient
	model   string
	timeout time.Duration
}

// New creates an Annotator around the given model client. A nil client means
// the AI path is disabled and every call takes the fallback path, which is
// the expected offline/dev-mode behavior, not an error.
func New(client ModelClient, model string, timeout time.Duration) *Annotator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Annotator{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

func (a *Annotator) configured() bool {
	return a.client != nil && a.client.Configured()
}

// CategorizeAndSummarize suggests a one-line summary and candidate categories
// for the content. existingCategories is a hint only; it biases the model
// toward consistency with already-used categories.
func (a *Annotator) CategorizeAndSummarize(ctx context.Context, content string, existingCategories []string) CategorySuggestion {
	if !a.configured() {
		log.Debug("annotation model not configured, using heuristic summarizer")
		return FallbackSummarize(content)
	}

	suggestion, err := a.summarizeWithModel(ctx, content, existingCategories)
	if err != nil {
		log.Warnf("Model summarization failed, falling back to heuristics: %v", err)
		return FallbackSummarize(content)
	}
	return suggestion
}

// GenerateTitleAndTags suggests a title and a comma-joined tag string for the
// content. Both fields are required in the model reply; a reply missing
// either one counts as an extraction failure and triggers the fallback.
func (a *Annotator) GenerateTitleAndTags(ctx context.Context, content string) TitleTagSuggestion {
	if !a.configured() {
		log.Debug("annotation model not configured, using heuristic title")
		return FallbackTitleTags(content)
	}

	suggestion, err := a.titleTagsWithModel(ctx, content)
	if err != nil {
		log.Warnf("Model title/tag generation failed, falling back to heuristics: %v", err)
		return FallbackTitleTags(content)
	}
	return suggestion
}

func (a *Annotator) summarizeWithModel(ctx context.Context, content string, existingCategories []string) (CategorySuggestion, error) {
	prompt := buildSummarizePrompt(content, existingCategories)

	raw, err := a.invoke(ctx, prompt, summarizeTemperature)
	if err != nil {
		return CategorySuggestion{}, err
	}

	fields, err := extractJSON(raw)
	if err != nil {
		return CategorySuggestion{}, err
	}
	summary, err := stringField(fields, "summary")
	if err != nil {
		return CategorySuggestion{}, err
	}
	return CategorySuggestion{
		Summary:             summary,
		SuggestedCategories: stringSlice(fields, "suggested_categories"),
	}, nil
}

func (a *Annotator) titleTagsWithModel(ctx context.Context, content string) (TitleTagSuggestion, error) {
	prompt := strings.ReplaceAll(titleTagPromptTemplate, "{{CONTENT}}", content)

	raw, err := a.invoke(ctx, prompt, titleTagTemperature)
	if err != nil {
		return TitleTagSuggestion{}, err
	}

	fields, err := extractJSON(raw)
	if err != nil {
		return TitleTagSuggestion{}, err
	}
	title, err := stringField(fields, "title")
	if err != nil {
		return TitleTagSuggestion{}, err
	}
	tags, err := stringField(fields, "tags")
	if err != nil {
		return TitleTagSuggestion{}, err
	}
	return TitleTagSuggestion{Title: title, Tags: tags}, nil
}

// invoke runs one bounded call against the model client. A single attempt is
// the policy; there is no retry before falling back.
func (a *Annotator) invoke(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.client.Invoke(ctx, prompt, a.model, temperature)
}

func buildSummarizePrompt(content string, existingCategories []string) string {
	hint := "There are no categories yet."
	if len(existingCategories) > 0 {
		hint = "Examples of existing categories: " + strings.Join(existingCategories, ", ")
	}
	prompt := strings.ReplaceAll(summarizePromptTemplate, "{{CATEGORY_HINT}}", hint)
	return strings.ReplaceAll(prompt, "{{CONTENT}}", content)
}
