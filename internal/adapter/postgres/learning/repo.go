// Package learning implements the LearningData repository using PostgreSQL.
package learning

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

const table = "learning_data"

var columns = []string{"id", "word_id", "user_id", "learned"}

// Repo provides learning-data persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new learning-data repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LearningData, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var row learningRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "learning_data", id)
	}

	d := row.toDomain()
	return &d, nil
}

// ListByUser returns a user's records ordered by word lemma.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LearningData, error) {
	query := postgres.Builder().
		Select("ld.id", "ld.word_id", "ld.user_id", "ld.learned").
		From(table + " ld").
		Join("words w ON w.id = ld.word_id").
		Where(squirrel.Eq{"ld.user_id": userID}).
		OrderBy("w.lemma", "ld.id")

	var rows []learningRow
	if err := postgres.Select(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("list learning data: %w", err)
	}

	data := make([]domain.LearningData, len(rows))
	for i, row := range rows {
		data[i] = row.toDomain()
	}
	return data, nil
}

// Create inserts a record. Returns domain.ErrAlreadyExists when the user
// already tracks the word.
func (r *Repo) Create(ctx context.Context, d *domain.LearningData) (*domain.LearningData, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.WordID, d.UserID, d.Learned).
		Suffix("RETURNING id, word_id, user_id, learned")

	var row learningRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "learning_data", d.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// SetLearned updates the learned flag.
func (r *Repo) SetLearned(ctx context.Context, id uuid.UUID, learned bool) (*domain.LearningData, error) {
	query := postgres.Builder().
		Update(table).
		Set("learned", learned).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, word_id, user_id, learned")

	var row learningRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "learning_data", id)
	}

	d := row.toDomain()
	return &d, nil
}

// Delete removes a record.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, r.db, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "learning_data", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "learning_data", id)
	}
	return nil
}

type learningRow struct {
	ID      uuid.UUID `db:"id"`
	WordID  uuid.UUID `db:"word_id"`
	UserID  uuid.UUID `db:"user_id"`
	Learned bool      `db:"learned"`
}

func (r learningRow) toDomain() domain.LearningData {
	return domain.LearningData{ID: r.ID, WordID: r.WordID, UserID: r.UserID, Learned: r.Learned}
}
