// Package word implements the dictionary (Word) repository using PostgreSQL.
package word

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

const table = "words"

var columns = []string{
	"id", "lemma", "translation", "pos", "gender", "source_lang", "target_lang",
	"pronunciation", "created_by", "modified_by", "created_at", "modified_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var row wordRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	w := row.toDomain()
	return &w, nil
}

// GetByIDs returns the words with the given ids in no particular order.
// Missing ids are silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	words, err := r.selectWords(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get words by ids: %w", err)
	}
	return words, nil
}

// FindByLemma returns every entry whose lemma equals lemma case-insensitively
// in the given language pair.
func (r *Repo) FindByLemma(ctx context.Context, lemma string, source, target domain.Language) ([]domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("lower(lemma) = lower(?)", lemma).
		Where(squirrel.Eq{"source_lang": string(source), "target_lang": string(target)}).
		OrderBy("pos", "gender NULLS FIRST")

	words, err := r.selectWords(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find words by lemma %q: %w", lemma, err)
	}
	return words, nil
}

// List returns one page of words ordered by lemma plus the total number of
// words matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	where := squirrel.And{}
	if filter.StartsWith != "" {
		where = append(where, squirrel.Expr(`lemma ILIKE ? ESCAPE '\'`, escapeLike(filter.StartsWith)+"%"))
	}
	if filter.SourceLang != nil {
		where = append(where, squirrel.Eq{"source_lang": string(*filter.SourceLang)})
	}
	if filter.TargetLang != nil {
		where = append(where, squirrel.Eq{"target_lang": string(*filter.TargetLang)})
	}

	countQuery := postgres.Builder().Select("count(*)").From(table).Where(where)
	var total int
	if err := postgres.Get(ctx, r.db, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("lemma", "pos", "id").
		Offset(uint64(filter.Offset))
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	words, err := r.selectWords(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	return words, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word and returns the persisted row.
// Returns domain.ErrAlreadyExists when (lemma, pos, gender) is taken.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "lemma", "translation", "pos", "gender", "source_lang", "target_lang",
			"pronunciation", "created_by", "modified_by").
		Values(w.ID, w.Lemma, w.Translation, string(w.POS), genderArg(w.Gender), string(w.SourceLang),
			string(w.TargetLang), w.Pronunciation, w.CreatedBy, w.ModifiedBy).
		Suffix(returning)

	var row wordRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update overwrites every mutable field of the word.
func (r *Repo) Update(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	query := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"lemma":         w.Lemma,
			"translation":   w.Translation,
			"pos":           string(w.POS),
			"gender":        genderArg(w.Gender),
			"source_lang":   string(w.SourceLang),
			"target_lang":   string(w.TargetLang),
			"pronunciation": w.Pronunciation,
			"modified_by":   w.ModifiedBy,
			"modified_at":   time.Now().UTC(),
		}).
		Where(squirrel.Eq{"id": w.ID}).
		Suffix(returning)

	var row wordRow
	if err := postgres.Get(ctx, r.db, &row, query); err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a word. Returns domain.ErrConflict while chapters or
// learning data still reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, r.db, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapDeleteError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word", id)
	}
	return nil
}

// BulkInsert inserts words in one statement, skipping rows whose
// (lemma, pos, gender) already exists. Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "lemma", "translation", "pos", "gender", "source_lang", "target_lang",
			"pronunciation", "created_by", "modified_by")
	for _, w := range words {
		query = query.Values(w.ID, w.Lemma, w.Translation, string(w.POS), genderArg(w.Gender),
			string(w.SourceLang), string(w.TargetLang), w.Pronunciation, w.CreatedBy, w.ModifiedBy)
	}
	query = query.Suffix("ON CONFLICT ON CONSTRAINT ux_words_lemma_pos_gender DO NOTHING")

	tag, err := postgres.Exec(ctx, r.db, query)
	if err != nil {
		return 0, postgres.MapError(err, "word", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectWords(ctx context.Context, query squirrel.Sqlizer) ([]domain.Word, error) {
	var rows []wordRow
	if err := postgres.Select(ctx, r.db, &rows, query); err != nil {
		return nil, err
	}

	words := make([]domain.Word, len(rows))
	for i, row := range rows {
		words[i] = row.toDomain()
	}
	return words, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func genderArg(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}
