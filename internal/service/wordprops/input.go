package wordprops

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// CreateInput links a word to a chapter.
type CreateInput struct {
	WordID    uuid.UUID
	ChapterID uuid.UUID
	Token     string
	Frequency int
}

func (i CreateInput) Validate() error {
	var errs domain.FieldErrors
	if i.WordID == uuid.Nil {
		errs.Add("word", "required")
	}
	if i.ChapterID == uuid.Nil {
		errs.Add("chapter", "required")
	}
	if i.Frequency < 0 {
		errs.Add("frequency", "must not be negative")
	}
	return errs.Err()
}

type UpdateInput struct {
	Token     string
	Frequency int
}

func (i UpdateInput) Validate() error {
	if i.Frequency < 0 {
		return domain.NewValidationError("frequency", "must not be negative")
	}
	return nil
}
