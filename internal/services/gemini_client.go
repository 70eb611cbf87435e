package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"promptvault/pkg/annotate"
)

// GeminiClient implements annotate.ModelClient using the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed model client. A missing API key is
// not an error: the client comes back disabled and the annotation service
// runs on its heuristic fallback, which is the expected offline behavior.
func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. AI annotation disabled; heuristic fallback will be used.")
		return &GeminiClient{client: nil}, nil
	}

	ctx := context.Background() // Use background context for initialization
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Info("Gemini annotation client initialized")
	return &GeminiClient{client: client}, nil
}

// Configured reports whether the client can reach the API.
func (c *GeminiClient) Configured() bool { return c.client != nil }

// Invoke sends a single-turn generation request and returns the concatenated
// text parts of the first candidate.
func (c *GeminiClient) Invoke(ctx context.Context, prompt, model string, temperature float32) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini client is not initialized (missing API key)")
	}

	m := c.client.GenerativeModel(model)
	m.SetTemperature(temperature)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini content generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini candidate contained no text parts")
	}
	return b.String(), nil
}

// Close cleans up the Gemini client resources.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

var _ annotate.ModelClient = (*GeminiClient)(nil)
