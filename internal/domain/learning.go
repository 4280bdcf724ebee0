package domain

import "github.com/google/uuid"

// LearningData marks a user's progress on a single Word.
type LearningData struct {
	ID      uuid.UUID
	WordID  uuid.UUID
	UserID  uuid.UUID
	Learned bool
}
