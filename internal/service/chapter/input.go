package chapter

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const maxTitleLen = 255

// SaveInput holds the fields of a new chapter.
type SaveInput struct {
	Title      string
	Body       string
	Public     bool
	SourceLang domain.Language
	TargetLang domain.Language
}

func (i *SaveInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	if i.Title == "" {
		i.Title = domain.DefaultChapterTitle
	}
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs domain.FieldErrors

	if utf8.RuneCountInString(i.Title) > maxTitleLen {
		errs.Add("title", "too long (max 255)")
	}
	if strings.TrimSpace(i.Body) == "" {
		errs.Add("body", "required")
	}
	checkLanguages(&errs, i.SourceLang, i.TargetLang)

	return errs.Err()
}

// UpdateInput holds the mutable chapter fields. Nil means unchanged.
type UpdateInput struct {
	Title      *string
	Body       *string
	Public     *bool
	SourceLang *domain.Language
	TargetLang *domain.Language
}

// Validate checks the provided fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.Title != nil && utf8.RuneCountInString(*i.Title) > maxTitleLen {
		errs.Add("title", "too long (max 255)")
	}
	if i.Body != nil && strings.TrimSpace(*i.Body) == "" {
		errs.Add("body", "must not be empty")
	}
	if i.SourceLang != nil && !i.SourceLang.IsValid() {
		errs.Add("source_lang", "unsupported language")
	}
	if i.TargetLang != nil && !i.TargetLang.IsValid() {
		errs.Add("target_lang", "unsupported language")
	}

	return errs.Err()
}

// ImportInput describes a chapter to be created from a web article.
type ImportInput struct {
	URL        string
	Public     bool
	SourceLang domain.Language
	TargetLang domain.Language
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs domain.FieldErrors

	if strings.TrimSpace(i.URL) == "" {
		errs.Add("url", "required")
	}
	checkLanguages(&errs, i.SourceLang, i.TargetLang)

	return errs.Err()
}

func checkLanguages(errs *domain.FieldErrors, source, target domain.Language) {
	if !source.IsValid() {
		errs.Add("source_lang", "unsupported language")
	}
	if !target.IsValid() {
		errs.Add("target_lang", "unsupported language")
	}
}
