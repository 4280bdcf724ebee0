package chapter

import "github.com/heartmarshall/vocabulary-backend/internal/domain"

// Summary describes what the analysis of a saved chapter produced.
type Summary struct {
	// Tokenized is false when the text could not be analysed at all,
	// e.g. no tokenizer serves the source language.
	Tokenized bool
	Lemmas    int
	Matched   int
	Fallback  int
	Missed    int
	Failed    int
	// Skipped counts word properties that could not be stored.
	Skipped int
}

// SaveResult is returned by Save and Import.
type SaveResult struct {
	Detail  domain.ChapterDetail
	Summary Summary
}
