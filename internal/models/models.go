package models

import "time"

// Prompt is a stored reusable prompt with its annotations. Tags is a single
// comma-joined string, stored and served as-is.
type Prompt struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Category  string    `db:"category" json:"category"`
	Content   string    `db:"content" json:"content"`
	Tags      string    `db:"tags" json:"tags"`
	Summary   string    `db:"summary" json:"summary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
