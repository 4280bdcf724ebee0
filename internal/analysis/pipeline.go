package analysis

import (
	"context"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// Result is the outcome of analysing one text.
type Result struct {
	Frequencies Frequencies
	Report      Report
}

// Pipeline runs tokenization, aggregation and resolution in sequence.
type Pipeline struct {
	tokenizers *Registry
	resolver   *Resolver
}

func NewPipeline(tokenizers *Registry, resolver *Resolver) *Pipeline {
	return &Pipeline{tokenizers: tokenizers, resolver: resolver}
}

// Analyze tokenizes text in the source language and resolves its lemmas
// against the dictionary. Tokenizer errors, including ErrUnsupportedLanguage,
// are returned as is; lookup errors are reported per lemma in the Result.
func (p *Pipeline) Analyze(ctx context.Context, text string, source, target domain.Language) (*Result, error) {
	tokens, err := p.tokenizers.Tokenize(ctx, text, source)
	if err != nil {
		return nil, err
	}

	freqs := Aggregate(tokens)
	return &Result{
		Frequencies: freqs,
		Report:      p.resolver.Resolve(ctx, freqs, source, target),
	}, nil
}

// Supports reports whether text in lang can be analysed.
func (p *Pipeline) Supports(lang domain.Language) bool {
	return p.tokenizers.Supports(lang)
}
