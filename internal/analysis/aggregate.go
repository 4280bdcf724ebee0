package analysis

import (
	"slices"
	"strings"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// LemmaStats holds the aggregated statistics of one lemma.
type LemmaStats struct {
	// Orig lists distinct lowercased surface forms that differ from the
	// lemma, in first-seen order. Nil when every occurrence matched the lemma.
	Orig  []string
	POS   domain.PartOfSpeech
	Count int
}

// Frequencies maps lowercased lemmas to their statistics and remembers the
// order in which lemmas were first seen. The zero value is an empty table.
type Frequencies struct {
	order []string
	stats map[string]LemmaStats
}

// Len returns the number of distinct lemmas.
func (f Frequencies) Len() int { return len(f.order) }

// Lemmas returns the lemmas in first-seen order.
func (f Frequencies) Lemmas() []string {
	return slices.Clone(f.order)
}

// Get returns the statistics of a lemma. The key must already be lowercased.
func (f Frequencies) Get(lemma string) (LemmaStats, bool) {
	st, ok := f.stats[lemma]
	if !ok {
		return LemmaStats{}, false
	}
	st.Orig = slices.Clone(st.Orig)
	return st, true
}

// Map returns a copy of the table as a plain map.
func (f Frequencies) Map() map[string]LemmaStats {
	m := make(map[string]LemmaStats, len(f.stats))
	for _, lemma := range f.order {
		m[lemma], _ = f.Get(lemma)
	}
	return m
}

// Aggregate folds a token sequence into per-lemma frequencies.
//
// Non-alphabetic tokens are skipped. Surface and lemma are compared
// lowercased. Every remaining token increments its lemma's count; a surface
// form that differs from the lemma is recorded once in Orig. The
// part-of-speech of the first occurrence is kept even if later occurrences
// carry another tag.
func Aggregate(tokens []Token) Frequencies {
	f := Frequencies{stats: make(map[string]LemmaStats)}

	for _, tok := range tokens {
		if !tok.IsAlpha {
			continue
		}

		lemma := strings.ToLower(tok.Lemma)
		surface := strings.ToLower(tok.Surface)

		st, seen := f.stats[lemma]
		if !seen {
			st = LemmaStats{POS: tok.POS}
			f.order = append(f.order, lemma)
		}

		st.Count++
		if surface != lemma && !slices.Contains(st.Orig, surface) {
			st.Orig = append(st.Orig, surface)
		}

		f.stats[lemma] = st
	}

	return f
}
