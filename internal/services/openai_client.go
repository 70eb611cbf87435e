package services

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"promptvault/pkg/annotate"
)

// chatCompleter is the minimal OpenAI client surface, kept as an interface so
// tests can substitute a canned client.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient implements annotate.ModelClient using an OpenAI-compatible
// chat completion API. Alternate provider to Gemini, selected by config.
type OpenAIClient struct {
	client chatCompleter
}

// NewOpenAIClient creates an OpenAI-backed model client. As with Gemini, a
// missing API key yields a disabled client rather than an error.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. AI annotation disabled; heuristic fallback will be used.")
		return &OpenAIClient{client: nil}
	}
	return &OpenAIClient{client: openai.NewClient(apiKey)}
}

// Configured reports whether the client can reach the API.
func (c *OpenAIClient) Configured() bool { return c.client != nil }

// Invoke sends the prompt as a single user message and returns the first
// choice's content.
func (c *OpenAIClient) Invoke(ctx context.Context, prompt, model string, temperature float32) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("openai client is not initialized (missing API key)")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ annotate.ModelClient = (*OpenAIClient)(nil)
