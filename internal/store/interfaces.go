package store

import (
	"context"

	"promptvault/internal/models"
)

// PromptStore is the durable record keeper for prompts. The annotation core
// only consumes ListDistinctCategories as a context hint; everything else is
// plain CRUD for the HTTP and CLI layers.
type PromptStore interface {
	CreatePrompt(ctx context.Context, p *models.Prompt) (*models.Prompt, error)
	GetPrompt(ctx context.Context, id int64) (*models.Prompt, error)
	ListPrompts(ctx context.Context) ([]*models.Prompt, error)
	ListDistinctCategories(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}
