package domain

import "github.com/google/uuid"

// WordProperties links a Word to a Chapter with per-chapter statistics.
type WordProperties struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	ChapterID uuid.UUID
	// Token is the ", "-joined list of surface variants seen in the chapter.
	Token     string
	Frequency int
}
