// Package wordprops implements the WordProperties repository using PostgreSQL.
package wordprops

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const table = "word_properties"

var columns = []string{"id", "word_id", "chapter_id", "token", "frequency"}

// Repo provides word-properties persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word-properties repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var row propsRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "word_properties", id)
	}

	p := row.toDomain()
	return &p, nil
}

// ListByChapter returns the records of one chapter, most frequent first.
func (r *Repo) ListByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.WordProperties, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"chapter_id": chapterID}).
		OrderBy("frequency DESC", "id")

	props, err := r.selectProps(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list word properties by chapter: %w", err)
	}
	return props, nil
}

// ListByOwner returns the records of every chapter created by userID.
func (r *Repo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.WordProperties, error) {
	query := postgres.Builder().
		Select("wp.id", "wp.word_id", "wp.chapter_id", "wp.token", "wp.frequency").
		From(table + " wp").
		Join("chapters c ON c.id = wp.chapter_id").
		Where(squirrel.Eq{"c.created_by": userID}).
		OrderBy("c.title", "wp.frequency DESC", "wp.id")

	props, err := r.selectProps(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list word properties by owner: %w", err)
	}
	return props, nil
}

// Create inserts a record. Returns domain.ErrNotFound when the word or the
// chapter does not exist.
func (r *Repo) Create(ctx context.Context, p *domain.WordProperties) (*domain.WordProperties, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.WordID, p.ChapterID, p.Token, p.Frequency).
		Suffix("RETURNING id, word_id, chapter_id, token, frequency")

	var row propsRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "word_properties", p.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update sets token and frequency.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, token string, frequency int) (*domain.WordProperties, error) {
	query := postgres.Builder().
		Update(table).
		Set("token", token).
		Set("frequency", frequency).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, word_id, chapter_id, token, frequency")

	var row propsRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "word_properties", id)
	}

	p := row.toDomain()
	return &p, nil
}

// Delete removes a record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, r.db, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "word_properties", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word_properties", id)
	}
	return nil
}

func (r *Repo) selectProps(ctx context.Context, query squirrel.Sqlizer) ([]domain.WordProperties, error) {
	var rows []propsRow
	if err := postgres.Select(ctx, r.db, &rows, query); err != nil {
		return nil, err
	}

	props := make([]domain.WordProperties, len(rows))
	for i, row := range rows {
		props[i] = row.toDomain()
	}
	return props, nil
}

type propsRow struct {
	ID        uuid.UUID `db:"id"`
	WordID    uuid.UUID `db:"word_id"`
	ChapterID uuid.UUID `db:"chapter_id"`
	Token     string    `db:"token"`
	Frequency int       `db:"frequency"`
}

func (r propsRow) toDomain() domain.WordProperties {
	return domain.WordProperties{
		ID:        r.ID,
		WordID:    r.WordID,
		ChapterID: r.ChapterID,
		Token:     r.Token,
		Frequency: r.Frequency,
	}
}
