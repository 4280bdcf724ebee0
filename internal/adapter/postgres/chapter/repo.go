// Package chapter implements the Chapter repository using PostgreSQL.
package chapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const table = "chapters"

var columns = []string{
	"id", "title", "body", "public", "source_lang", "target_lang",
	"created_by", "modified_by", "created_at", "modified_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides chapter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new chapter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a chapter by primary key regardless of visibility.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chapter, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var row chapterRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "chapter", id)
	}

	c := row.toDomain()
	return &c, nil
}

// ListVisible returns the chapters userID may read, private ones first, then
// by title. uuid.Nil (anonymous) sees public chapters only.
func (r *Repo) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Chapter, error) {
	var visible squirrel.Sqlizer = squirrel.Eq{"public": true}
	if userID != uuid.Nil {
		visible = squirrel.Or{squirrel.Eq{"public": true}, squirrel.Eq{"created_by": userID}}
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(visible).
		OrderBy("public", "title", "id")

	var rows []chapterRow
	if err := postgres.Select(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	chapters := make([]domain.Chapter, len(rows))
	for i, row := range rows {
		chapters[i] = row.toDomain()
	}
	return chapters, nil
}

// Create inserts a chapter and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Chapter) (*domain.Chapter, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "title", "body", "public", "source_lang", "target_lang", "created_by", "modified_by").
		Values(c.ID, c.Title, c.Body, c.Public, string(c.SourceLang), string(c.TargetLang), c.CreatedBy, c.ModifiedBy).
		Suffix(returning)

	var row chapterRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "chapter", c.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ChapterUpdateParams) (*domain.Chapter, error) {
	set := map[string]any{
		"modified_by": params.ModifiedBy,
		"modified_at": time.Now().UTC(),
	}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.Body != nil {
		set["body"] = *params.Body
	}
	if params.Public != nil {
		set["public"] = *params.Public
	}
	if params.SourceLang != nil {
		set["source_lang"] = string(*params.SourceLang)
	}
	if params.TargetLang != nil {
		set["target_lang"] = string(*params.TargetLang)
	}

	query := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	var row chapterRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "chapter", id)
	}

	c := row.toDomain()
	return &c, nil
}

// Delete removes a chapter together with its word properties.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, r.db, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "chapter", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "chapter", id)
	}
	return nil
}

type chapterRow struct {
	ID         uuid.UUID  `db:"id"`
	Title      string     `db:"title"`
	Body       string     `db:"body"`
	Public     bool       `db:"public"`
	SourceLang string     `db:"source_lang"`
	TargetLang string     `db:"target_lang"`
	CreatedBy  *uuid.UUID `db:"created_by"`
	ModifiedBy *uuid.UUID `db:"modified_by"`
	CreatedAt  time.Time  `db:"created_at"`
	ModifiedAt time.Time  `db:"modified_at"`
}

func (r chapterRow) toDomain() domain.Chapter {
	return domain.Chapter{
		ID:         r.ID,
		Title:      r.Title,
		Body:       r.Body,
		Public:     r.Public,
		SourceLang: domain.Language(r.SourceLang),
		TargetLang: domain.Language(r.TargetLang),
		CreatedBy:  r.CreatedBy,
		ModifiedBy: r.ModifiedBy,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
}
