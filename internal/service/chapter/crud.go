package chapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

// List returns public chapters and, for an authenticated caller, their own
// private ones, ordered by public flag then title.
func (s *Service) List(ctx context.Context) ([]domain.Chapter, error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	chapters, err := s.chapters.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chapter.List: %w", err)
	}
	return chapters, nil
}

// Get returns a chapter with its word properties. Chapters the caller may
// not see are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ChapterDetail, error) {
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	chapter, err := s.chapters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("chapter.Get: %w", err)
	}
	if !chapter.IsVisibleTo(userID) {
		return nil, fmt.Errorf("chapter.Get %s: %w", id, domain.ErrNotFound)
	}

	props, err := s.props.ListByChapter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("chapter.Get: list properties: %w", err)
	}

	return &domain.ChapterDetail{Chapter: *chapter, Properties: props}, nil
}

// Update changes chapter fields. Stored word properties are left as they are.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Chapter, error) {
	userID, err := s.authorizeOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		if t == "" {
			t = domain.DefaultChapterTitle
		}
		input.Title = &t
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	chapter, err := s.chapters.Update(ctx, id, domain.ChapterUpdateParams{
		Title:      input.Title,
		Body:       input.Body,
		Public:     input.Public,
		SourceLang: input.SourceLang,
		TargetLang: input.TargetLang,
		ModifiedBy: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("chapter.Update: %w", err)
	}
	return chapter, nil
}

// Delete removes a chapter and, through the database, its word properties.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.authorizeOwner(ctx, id); err != nil {
		return err
	}

	if err := s.chapters.Delete(ctx, id); err != nil {
		return fmt.Errorf("chapter.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "chapter deleted", slog.String("chapter_id", id.String()))
	return nil
}

// authorizeOwner loads the chapter and checks the caller created it.
// A private chapter of someone else is reported as not found.
func (s *Service) authorizeOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	chapter, err := s.chapters.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("chapter: load %s: %w", id, err)
	}
	if !chapter.IsVisibleTo(userID) {
		return uuid.Nil, fmt.Errorf("chapter %s: %w", id, domain.ErrNotFound)
	}
	if !chapter.IsOwnedBy(userID) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
