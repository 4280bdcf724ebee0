// Package kagome tokenizes Japanese text in-process with the kagome
// morphological analyzer and the IPA dictionary.
package kagome

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// IPA feature indexes.
const (
	featPOS     = 0
	featSubPOS  = 1
	featBase    = 6
	unknownFeat = "*"
)

// Tokenizer implements analysis.Tokenizer for Japanese.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// New loads the IPA dictionary. Loading takes a noticeable amount of memory,
// so build one Tokenizer per process.
func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("kagome: load dictionary: %w", err)
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize splits text into morphemes. The lemma is the IPA base form when
// the dictionary knows it, the surface form otherwise.
func (k *Tokenizer) Tokenize(ctx context.Context, text string) ([]analysis.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	morphs := k.t.Tokenize(text)
	tokens := make([]analysis.Token, 0, len(morphs))

	for _, m := range morphs {
		if m.Class == tokenizer.DUMMY || strings.TrimSpace(m.Surface) == "" {
			continue
		}

		features := m.Features()

		lemma := m.Surface
		if len(features) > featBase && features[featBase] != unknownFeat {
			lemma = features[featBase]
		}

		pos := mapPOS(features)
		tokens = append(tokens, analysis.Token{
			Surface: m.Surface,
			Lemma:   lemma,
			POS:     pos,
			IsAlpha: pos != posPunct && isAlpha(m.Surface),
		})
	}

	return tokens, nil
}

const posPunct domain.PartOfSpeech = "PUNCT"

var ipaPOS = map[string]domain.PartOfSpeech{
	"名詞":   domain.PosNoun,
	"動詞":   domain.PosVerb,
	"形容詞":  domain.PosAdjective,
	"副詞":   domain.PosAdverb,
	"助詞":   domain.PosAdposition,
	"助動詞":  domain.PosAuxiliary,
	"連体詞":  domain.PosDeterminer,
	"接続詞":  domain.PosCoordinatingConj,
	"感動詞":  domain.PosInterjection,
	"フィラー": domain.PosInterjection,
	"記号":   posPunct,
}

// mapPOS converts the IPA part-of-speech features to a universal tag.
func mapPOS(features []string) domain.PartOfSpeech {
	if len(features) <= featPOS {
		return domain.PosOther
	}

	pos, ok := ipaPOS[features[featPOS]]
	if !ok {
		return domain.PosOther
	}

	if pos == domain.PosNoun && len(features) > featSubPOS {
		switch features[featSubPOS] {
		case "固有名詞":
			return domain.PosProperNoun
		case "代名詞":
			return domain.PosPronoun
		case "数":
			return domain.PosNumeral
		}
	}
	return pos
}

// isAlpha reports whether s consists of letters only. Kana and kanji count
// as letters; digits and symbols do not.
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
