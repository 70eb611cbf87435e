// Package sqlite implements store.PromptStore on a single flat SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"promptvault/internal/models"
	"promptvault/internal/store"
)

type Store struct {
	db *sql.DB
}

// New opens (or creates) the prompts database at dsn and applies the schema.
func New(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("sqlite DSN cannot be empty")
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates the prompts table and adds the annotation columns to
// databases created before those columns existed. SQLite has no
// ADD COLUMN IF NOT EXISTS, so the duplicate-column error is expected on
// every run after the first and is ignored.
func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS prompts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			category TEXT,
			content TEXT,
			tags TEXT,
			summary TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create prompts table: %w", err)
	}

	for _, column := range []string{"title", "tags", "summary"} {
		if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE prompts ADD COLUMN %s TEXT", column)); err != nil {
			log.Debugf("Skipping migration for column %q (likely already present): %v", column, err)
		}
	}
	return nil
}

func (s *Store) CreatePrompt(ctx context.Context, p *models.Prompt) (*models.Prompt, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO prompts (title, category, content, summary, tags) VALUES (?, ?, ?, ?, ?)",
		p.Title, p.Category, p.Content, p.Summary, p.Tags,
	)
	if err != nil {
		return nil, fmt.Errorf("insert prompt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("fetch inserted prompt id: %w", err)
	}
	// Re-read the stored row so the caller sees column defaults (created_at).
	return s.GetPrompt(ctx, id)
}

func (s *Store) GetPrompt(ctx context.Context, id int64) (*models.Prompt, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, category, content, summary, tags, created_at FROM prompts WHERE id = ?", id)

	p, err := scanPrompt(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prompt %d: %w", id, err)
	}
	return p, nil
}

func (s *Store) ListPrompts(ctx context.Context) ([]*models.Prompt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, category, content, summary, tags, created_at FROM prompts ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*models.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompt rows: %w", err)
	}
	return prompts, nil
}

// ListDistinctCategories returns the categories already in use, for the
// annotation service's context hint. Empty and NULL categories are excluded.
func (s *Store) ListDistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM prompts WHERE category IS NOT NULL AND category != ''")
	if err != nil {
		return nil, fmt.Errorf("list distinct categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// scanPrompt reads one prompts row. Annotation columns are nullable in old
// databases, so they go through sql.NullString.
func scanPrompt(scan func(dest ...any) error) (*models.Prompt, error) {
	var p models.Prompt
	var title, category, content, summary, tags sql.NullString
	if err := scan(&p.ID, &title, &category, &content, &summary, &tags, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Title = title.String
	p.Category = category.String
	p.Content = content.String
	p.Summary = summary.String
	p.Tags = tags.String
	return &p, nil
}

var _ store.PromptStore = (*Store)(nil)
