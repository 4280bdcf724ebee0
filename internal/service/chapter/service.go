// Package chapter implements chapter management and the save flow that
// derives per-chapter word statistics from the submitted text.
package chapter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/adapter/readability"
	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// chapterRepo defines the chapter repository interface needed by chapter service.
type chapterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chapter, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Chapter, error)
	Create(ctx context.Context, c *domain.Chapter) (*domain.Chapter, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ChapterUpdateParams) (*domain.Chapter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// propsRepo defines the word properties repository interface needed by chapter service.
type propsRepo interface {
	ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.WordProperties, error)
	Create(ctx context.Context, p *domain.WordProperties) (*domain.WordProperties, error)
}

// analyzer turns chapter text into lemma statistics and dictionary matches.
type analyzer interface {
	Analyze(ctx context.Context, text string, source, target domain.Language) (*analysis.Result, error)
}

// articleFetcher downloads a web page and extracts its article text.
type articleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*readability.Article, error)
}

// Service implements chapter operations.
type Service struct {
	log      *slog.Logger
	chapters chapterRepo
	props    propsRepo
	analyzer analyzer
	fetcher  articleFetcher
}

// NewService creates a new chapter service instance.
func NewService(
	logger *slog.Logger,
	chapters chapterRepo,
	props propsRepo,
	analyzer analyzer,
	fetcher articleFetcher,
) *Service {
	return &Service{
		log:      logger.With("service", "chapter"),
		chapters: chapters,
		props:    props,
		analyzer: analyzer,
		fetcher:  fetcher,
	}
}
