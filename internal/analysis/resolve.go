package analysis

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// WordLookup finds dictionary entries by lemma and language pair.
// Matching on lemma must be case-insensitive.
type WordLookup interface {
	FindByLemma(ctx context.Context, lemma string, source, target domain.Language) ([]domain.Word, error)
}

// Outcome classifies how a lemma was resolved.
type Outcome string

const (
	OutcomeMatched  Outcome = "matched"
	OutcomeFallback Outcome = "fallback"
	OutcomeMissed   Outcome = "missed"
	OutcomeFailed   Outcome = "failed"
)

// LemmaResult is the resolution of one aggregated lemma.
type LemmaResult struct {
	Lemma   string
	Outcome Outcome
	// Via is the query that produced Words: the lemma itself, or its first
	// recorded surface variant for OutcomeFallback.
	Via   string
	Words []domain.Word
	Err   error
}

// Report collects per-lemma results in first-seen lemma order.
type Report struct {
	Results []LemmaResult
}

// Words returns every matched dictionary entry in resolution order.
func (r Report) Words() []domain.Word {
	var words []domain.Word
	for _, res := range r.Results {
		words = append(words, res.Words...)
	}
	return words
}

// Failures returns results whose lookup errored.
func (r Report) Failures() []LemmaResult {
	return r.filter(OutcomeFailed)
}

// Missed returns results with no dictionary entry.
func (r Report) Missed() []LemmaResult {
	return r.filter(OutcomeMissed)
}

// Count returns the number of results with the given outcome.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

func (r Report) filter(o Outcome) []LemmaResult {
	var out []LemmaResult
	for _, res := range r.Results {
		if res.Outcome == o {
			out = append(out, res)
		}
	}
	return out
}

// Resolver maps aggregated lemmas to dictionary entries.
type Resolver struct {
	words WordLookup
	log   *slog.Logger
}

// NewResolver creates a Resolver backed by the given lookup.
func NewResolver(words WordLookup, logger *slog.Logger) *Resolver {
	return &Resolver{words: words, log: logger}
}

// Resolve looks up every lemma of freqs sequentially.
//
// A lemma with at least one dictionary match contributes all of them. A lemma
// without matches falls back to its first surface variant, if any. Lookup
// errors are recorded per lemma and never abort the pass; once ctx is done
// the remaining lemmas are marked failed with the context error.
func (r *Resolver) Resolve(ctx context.Context, freqs Frequencies, source, target domain.Language) Report {
	report := Report{Results: make([]LemmaResult, 0, freqs.Len())}

	for _, lemma := range freqs.order {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, LemmaResult{Lemma: lemma, Outcome: OutcomeFailed, Err: err})
			continue
		}

		res := r.resolveOne(ctx, lemma, freqs.stats[lemma], source, target)
		switch res.Outcome {
		case OutcomeFailed:
			r.log.WarnContext(ctx, "dictionary lookup failed", slog.String("lemma", lemma), slog.Any("error", res.Err))
		case OutcomeMissed:
			r.log.DebugContext(ctx, "lemma not in dictionary", slog.String("lemma", lemma))
		}
		report.Results = append(report.Results, res)
	}

	return report
}

func (r *Resolver) resolveOne(ctx context.Context, lemma string, st LemmaStats, source, target domain.Language) LemmaResult {
	res := LemmaResult{Lemma: lemma, Via: lemma}

	words, err := r.words.FindByLemma(ctx, lemma, source, target)
	if err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if len(words) > 0 {
		res.Outcome, res.Words = OutcomeMatched, words
		return res
	}

	if len(st.Orig) == 0 {
		res.Outcome = OutcomeMissed
		return res
	}

	res.Via = st.Orig[0]
	words, err = r.words.FindByLemma(ctx, res.Via, source, target)
	if err != nil {
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}
	if len(words) == 0 {
		res.Outcome = OutcomeMissed
		return res
	}
	res.Outcome, res.Words = OutcomeFallback, words
	return res
}
