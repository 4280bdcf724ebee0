package word

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

type wordRow struct {
	ID            uuid.UUID  `db:"id"`
	Lemma         string     `db:"lemma"`
	Translation   string     `db:"translation"`
	POS           string     `db:"pos"`
	Gender        *string    `db:"gender"`
	SourceLang    string     `db:"source_lang"`
	TargetLang    string     `db:"target_lang"`
	Pronunciation *string    `db:"pronunciation"`
	CreatedBy     *uuid.UUID `db:"created_by"`
	ModifiedBy    *uuid.UUID `db:"modified_by"`
	CreatedAt     time.Time  `db:"created_at"`
	ModifiedAt    time.Time  `db:"modified_at"`
}

func (r wordRow) toDomain() domain.Word {
	w := domain.Word{
		ID:            r.ID,
		Lemma:         r.Lemma,
		Translation:   r.Translation,
		POS:           domain.PartOfSpeech(r.POS),
		SourceLang:    domain.Language(r.SourceLang),
		TargetLang:    domain.Language(r.TargetLang),
		Pronunciation: r.Pronunciation,
		CreatedBy:     r.CreatedBy,
		ModifiedBy:    r.ModifiedBy,
		CreatedAt:     r.CreatedAt,
		ModifiedAt:    r.ModifiedAt,
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		w.Gender = &g
	}
	return w
}
