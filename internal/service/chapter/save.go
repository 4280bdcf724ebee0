package chapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/adapter/readability"
	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

// Save stores a new chapter owned by the caller and derives one word
// properties record for every dictionary entry found in its title and body.
//
// The chapter is persisted before analysis starts and is always returned
// once stored. A text that cannot be tokenized yields no properties and
// Summary.Tokenized set to false; properties not stored because of an
// error or a cancelled context are counted in Summary.Skipped.
func (s *Service) Save(ctx context.Context, input SaveInput) (*SaveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	chapter, err := s.chapters.Create(ctx, &domain.Chapter{
		ID:         uuid.New(),
		Title:      input.Title,
		Body:       input.Body,
		Public:     input.Public,
		SourceLang: input.SourceLang,
		TargetLang: input.TargetLang,
		CreatedBy:  &userID,
		ModifiedBy: &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("chapter.Save: %w", err)
	}

	result := &SaveResult{Detail: domain.ChapterDetail{Chapter: *chapter}}

	analysed, err := s.analyzer.Analyze(ctx, chapter.Title+" "+chapter.Body, chapter.SourceLang, chapter.TargetLang)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, analysis.ErrUnsupportedLanguage) || ctx.Err() != nil {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "chapter analysis failed",
			slog.String("chapter_id", chapter.ID.String()),
			slog.String("source_lang", chapter.SourceLang.String()),
			slog.String("error", err.Error()),
		)
		result.Detail.Properties = []domain.WordProperties{}
		return result, nil
	}

	result.Summary = Summary{
		Tokenized: true,
		Lemmas:    analysed.Frequencies.Len(),
		Matched:   analysed.Report.Count(analysis.OutcomeMatched),
		Fallback:  analysed.Report.Count(analysis.OutcomeFallback),
		Missed:    analysed.Report.Count(analysis.OutcomeMissed),
		Failed:    analysed.Report.Count(analysis.OutcomeFailed),
	}

	words := analysed.Report.Words()
	props := make([]domain.WordProperties, 0, len(words))
	for i, w := range words {
		if ctx.Err() != nil {
			// The chapter already exists; report what was stored.
			result.Summary.Skipped += len(words) - i
			s.log.WarnContext(ctx, "chapter save interrupted",
				slog.String("chapter_id", chapter.ID.String()),
				slog.Int("skipped", len(words)-i),
			)
			break
		}

		p := buildProperties(chapter.ID, w, analysed.Frequencies)

		created, err := s.props.Create(ctx, &p)
		if err != nil {
			result.Summary.Skipped++
			s.log.ErrorContext(ctx, "store word properties",
				slog.String("chapter_id", chapter.ID.String()),
				slog.String("word_id", w.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		props = append(props, *created)
	}
	result.Detail.Properties = props

	s.log.InfoContext(ctx, "chapter saved",
		slog.String("chapter_id", chapter.ID.String()),
		slog.Int("lemmas", result.Summary.Lemmas),
		slog.Int("properties", len(props)),
		slog.Int("missed", result.Summary.Missed),
	)

	return result, nil
}

// buildProperties fills frequency and token only when the entry's
// part-of-speech agrees with the one recorded for its lemma in the text.
// Entries found through a surface-form fallback have no statistics under
// their own lemma and get the zero values.
func buildProperties(chapterID uuid.UUID, w domain.Word, freqs analysis.Frequencies) domain.WordProperties {
	p := domain.WordProperties{
		ID:        uuid.New(),
		WordID:    w.ID,
		ChapterID: chapterID,
	}

	st, ok := freqs.Get(strings.ToLower(w.Lemma))
	if !ok || st.POS != w.POS {
		return p
	}

	p.Frequency = st.Count
	if len(st.Orig) > 0 {
		p.Token = strings.Join(st.Orig, ", ")
	}
	return p
}

// Import fetches a web article and saves its text as a chapter. The
// article title is used when present.
func (s *Service) Import(ctx context.Context, input ImportInput) (*SaveResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	article, err := s.fetcher.Fetch(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		switch {
		case errors.Is(err, readability.ErrInvalidURL):
			return nil, domain.NewValidationError("url", "must be an absolute http or https URL")
		case errors.Is(err, readability.ErrTooLarge):
			return nil, domain.NewValidationError("url", "page is too large")
		case errors.Is(err, readability.ErrNoContent):
			return nil, domain.NewValidationError("url", "no readable content")
		case errors.Is(err, readability.ErrForbiddenAddress):
			return nil, domain.NewValidationError("url", "must point to a public host")
		}
		return nil, fmt.Errorf("chapter.Import: %w", err)
	}

	title := []rune(strings.TrimSpace(article.Title))
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen]
	}

	return s.Save(ctx, SaveInput{
		Title:      string(title),
		Body:       article.Text,
		Public:     input.Public,
		SourceLang: input.SourceLang,
		TargetLang: input.TargetLang,
	})
}
