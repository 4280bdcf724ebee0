// Package analysis turns raw chapter text into dictionary matches.
//
// The pipeline has three stages: a language-specific Tokenizer produces
// linguistic tokens, Aggregate folds them into per-lemma frequencies, and a
// Resolver looks each lemma up in the dictionary. Tokenizers are selected
// through a Registry keyed by language code.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// ErrUnsupportedLanguage is returned when no tokenizer is registered for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Token is a single linguistic unit produced by a Tokenizer.
type Token struct {
	Surface string
	Lemma   string
	POS     domain.PartOfSpeech
	IsAlpha bool
}

// Tokenizer splits text into tokens for one language.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]Token, error)
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func(ctx context.Context, text string) ([]Token, error)

func (f TokenizerFunc) Tokenize(ctx context.Context, text string) ([]Token, error) {
	return f(ctx, text)
}

// Registry maps language codes to tokenizers. It is populated at startup and
// read-only afterwards; Register must not race with Tokenize.
type Registry struct {
	tokenizers map[domain.Language]Tokenizer
}

// NewRegistry creates an empty Registry. Every language is unsupported until registered.
func NewRegistry() *Registry {
	return &Registry{tokenizers: make(map[domain.Language]Tokenizer)}
}

// Register binds a tokenizer to a language, replacing any previous binding.
func (r *Registry) Register(lang domain.Language, t Tokenizer) {
	r.tokenizers[lang] = t
}

// Supports reports whether a tokenizer is registered for lang.
func (r *Registry) Supports(lang domain.Language) bool {
	_, ok := r.tokenizers[lang]
	return ok
}

// Languages returns the registered language codes in sorted order.
func (r *Registry) Languages() []domain.Language {
	langs := make([]domain.Language, 0, len(r.tokenizers))
	for l := range r.tokenizers {
		langs = append(langs, l)
	}
	slices.Sort(langs)
	return langs
}

// Tokenize runs the tokenizer registered for lang.
// Returns ErrUnsupportedLanguage (wrapped) when none is registered.
func (r *Registry) Tokenize(ctx context.Context, text string, lang domain.Language) ([]Token, error) {
	t, ok := r.tokenizers[lang]
	if !ok {
		return nil, fmt.Errorf("tokenize %q: %w", lang, ErrUnsupportedLanguage)
	}

	tokens, err := t.Tokenize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", lang, err)
	}
	return tokens, nil
}
