package word

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const maxFieldLen = 255

// WordInput holds the writable fields of a dictionary entry.
type WordInput struct {
	Lemma         string
	Translation   string
	POS           domain.PartOfSpeech
	Gender        *domain.Gender
	SourceLang    domain.Language
	TargetLang    domain.Language
	Pronunciation *string
}

// normalize trims text fields and treats empty optionals as absent.
func (i *WordInput) normalize() {
	i.Lemma = strings.TrimSpace(i.Lemma)
	i.Translation = strings.TrimSpace(i.Translation)
	i.POS = domain.PartOfSpeech(strings.ToUpper(strings.TrimSpace(string(i.POS))))
	if i.Gender != nil {
		g := domain.Gender(strings.ToLower(strings.TrimSpace(string(*i.Gender))))
		if g == "" {
			i.Gender = nil
		} else {
			i.Gender = &g
		}
	}
	if i.Pronunciation != nil {
		p := strings.TrimSpace(*i.Pronunciation)
		if p == "" {
			i.Pronunciation = nil
		} else {
			i.Pronunciation = &p
		}
	}
}

// Validate checks all fields and collects all errors.
func (i WordInput) Validate() error {
	var errs domain.FieldErrors

	checkText(&errs, "lemma", i.Lemma)
	checkText(&errs, "translation", i.Translation)

	if i.POS == "" {
		errs.Add("pos", "required")
	} else if !i.POS.IsValid() {
		errs.Add("pos", "invalid part of speech")
	}
	if i.Gender != nil && !i.Gender.IsValid() {
		errs.Add("gender", "must be f, m or n")
	}
	if !i.SourceLang.IsValid() {
		errs.Add("source_lang", "unsupported language")
	}
	if !i.TargetLang.IsValid() {
		errs.Add("target_lang", "unsupported language")
	}
	if i.Pronunciation != nil && utf8.RuneCountInString(*i.Pronunciation) > maxFieldLen {
		errs.Add("pronunciation", "too long (max 255)")
	}

	return errs.Err()
}

func checkText(errs *domain.FieldErrors, field, v string) {
	switch n := utf8.RuneCountInString(v); {
	case n == 0:
		errs.Add(field, "required")
	case n > maxFieldLen:
		errs.Add(field, "too long (max 255)")
	}
}

func (i WordInput) toDomain(id uuid.UUID) domain.Word {
	return domain.Word{
		ID:            id,
		Lemma:         i.Lemma,
		Translation:   i.Translation,
		POS:           i.POS,
		Gender:        i.Gender,
		SourceLang:    i.SourceLang,
		TargetLang:    i.TargetLang,
		Pronunciation: i.Pronunciation,
	}
}

// ListInput selects one page of the dictionary.
type ListInput struct {
	StartsWith string
	SourceLang *domain.Language
	TargetLang *domain.Language
	// Page is 1-based; zero means the first page.
	Page int
	// PageSize zero means the configured default.
	PageSize int
}
