package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a dictionary entry: a lemma in a source language with its
// translation into a target language. (Lemma, POS, Gender) is unique.
type Word struct {
	ID            uuid.UUID
	Lemma         string
	Translation   string
	POS           PartOfSpeech
	Gender        *Gender
	SourceLang    Language
	TargetLang    Language
	Pronunciation *string
	CreatedBy     *uuid.UUID
	ModifiedBy    *uuid.UUID
	CreatedAt     time.Time
	ModifiedAt    time.Time
}

// WordFilter narrows a dictionary listing.
type WordFilter struct {
	// StartsWith matches lemmas by case-insensitive prefix.
	StartsWith string
	SourceLang *Language
	TargetLang *Language
	Limit      int
	Offset     int
}

// WordImportRow is one dictionary row from a bulk import.
type WordImportRow struct {
	Line          int
	Lemma         string
	Translation   string
	POS           PartOfSpeech
	Gender        *Gender
	SourceLang    Language
	TargetLang    Language
	Pronunciation *string
}

// WordImportResult summarizes a bulk dictionary import.
type WordImportResult struct {
	Inserted int
	Skipped  int
	Errors   []WordImportError
}

// WordImportError describes a rejected import row.
type WordImportError struct {
	Line    int
	Message string
}
