package word

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/pkg/ctxutil"
)

// importWorkers bounds concurrent batch inserts.
const importWorkers = 4

// Import loads dictionary rows from CSV. Each row is validated on its own;
// rejected rows are reported with their line number and never abort the
// import. Rows whose (lemma, pos, gender) already exists are skipped.
// The caller, if any, is recorded as author of inserted words.
func (s *Service) Import(ctx context.Context, r io.Reader) (*domain.WordImportResult, error) {
	rows, rowErrs, err := parseCSV(r)
	if err != nil {
		return nil, err
	}

	var author *uuid.UUID
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		author = &userID
	}

	result := &domain.WordImportResult{Errors: rowErrs}
	seen := make(map[string]int, len(rows))
	words := make([]domain.Word, 0, len(rows))

	for _, row := range rows {
		in := row.input
		in.normalize()
		if err := in.Validate(); err != nil {
			result.Errors = append(result.Errors, domain.WordImportError{Line: row.line, Message: describe(err)})
			continue
		}

		key := naturalKey(in)
		if first, dup := seen[key]; dup {
			result.Errors = append(result.Errors, domain.WordImportError{
				Line:    row.line,
				Message: fmt.Sprintf("duplicate of line %d", first),
			})
			continue
		}
		seen[key] = row.line

		w := in.toDomain(uuid.New())
		w.CreatedBy = author
		w.ModifiedBy = author
		words = append(words, w)
	}

	inserted, err := s.insertBatches(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("word.Import: %w", err)
	}
	result.Inserted = inserted
	result.Skipped = len(words) - inserted

	sort.SliceStable(result.Errors, func(i, j int) bool { return result.Errors[i].Line < result.Errors[j].Line })

	s.log.InfoContext(ctx, "dictionary import finished",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("rejected", len(result.Errors)))

	return result, nil
}

// insertBatches writes words in batches of the configured size. Batches hold
// disjoint natural keys, so they can be inserted concurrently.
func (s *Service) insertBatches(ctx context.Context, words []domain.Word) (int, error) {
	size := s.imports.CSVBatchSize
	if size <= 0 {
		size = len(words)
	}

	var batches [][]domain.Word
	for start := 0; start < len(words); start += size {
		batches = append(batches, words[start:min(start+size, len(words))])
	}

	counts := make([]int, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importWorkers)

	for i, batch := range batches {
		g.Go(func() error {
			n, err := s.words.BulkInsert(gctx, batch)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i+1, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

func naturalKey(in WordInput) string {
	gender := ""
	if in.Gender != nil {
		gender = string(*in.Gender)
	}
	return in.Lemma + "\x00" + string(in.POS) + "\x00" + gender
}

// describe flattens a validation error into one line for the import report.
func describe(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}
