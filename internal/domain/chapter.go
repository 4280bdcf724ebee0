package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultChapterTitle is used when a chapter is submitted without a title.
const DefaultChapterTitle = "Teksti"

// Chapter is a unit of submitted source text.
type Chapter struct {
	ID         uuid.UUID
	Title      string
	Body       string
	Public     bool
	SourceLang Language
	TargetLang Language
	CreatedBy  *uuid.UUID
	ModifiedBy *uuid.UUID
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// IsVisibleTo reports whether the chapter may be read by userID.
// uuid.Nil stands for an anonymous caller.
func (c *Chapter) IsVisibleTo(userID uuid.UUID) bool {
	if c.Public {
		return true
	}
	return c.IsOwnedBy(userID)
}

// IsOwnedBy reports whether userID created the chapter.
func (c *Chapter) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && c.CreatedBy != nil && *c.CreatedBy == userID
}

// ChapterDetail is a chapter with the word statistics derived from it.
type ChapterDetail struct {
	Chapter
	Properties []WordProperties
}

// ChapterUpdateParams carries the mutable chapter fields. Nil means unchanged.
type ChapterUpdateParams struct {
	Title      *string
	Body       *string
	Public     *bool
	SourceLang *Language
	TargetLang *Language
	ModifiedBy uuid.UUID
}
