package word

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// CSV columns. gender and pronunciation may be omitted from the header;
// any other column is rejected.
var (
	requiredColumns = []string{"lemma", "translation", "pos", "source_lang", "target_lang"}
	optionalColumns = []string{"gender", "pronunciation"}
)

// csvRow is one data record with its 1-based line number in the file.
type csvRow struct {
	line  int
	input WordInput
}

// parseCSV reads a dictionary CSV with a header row. Columns are matched by
// header name in any order. A malformed header is an error; malformed data
// rows are returned individually in rowErrs.
func parseCSV(r io.Reader) (rows []csvRow, rowErrs []domain.WordImportError, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, domain.NewValidationError("file", "empty file")
		}
		return nil, nil, domain.NewValidationError("file", fmt.Sprintf("read header: %v", err))
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, nil, err
	}

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			var parseErr *csv.ParseError
			if errors.As(readErr, &parseErr) {
				rowErrs = append(rowErrs, domain.WordImportError{Line: parseErr.StartLine, Message: parseErr.Err.Error()})
				continue
			}
			return nil, nil, fmt.Errorf("read csv: %w", readErr)
		}
		if isBlank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		in := WordInput{
			Lemma:       get("lemma"),
			Translation: get("translation"),
			POS:         domain.PartOfSpeech(get("pos")),
			SourceLang:  domain.Language(strings.TrimSpace(get("source_lang"))),
			TargetLang:  domain.Language(strings.TrimSpace(get("target_lang"))),
		}
		if g := get("gender"); g != "" {
			gender := domain.Gender(g)
			in.Gender = &gender
		}
		if p := get("pronunciation"); p != "" {
			in.Pronunciation = &p
		}

		rows = append(rows, csvRow{line: line, input: in})
	}

	return rows, rowErrs, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; dup {
			return nil, domain.NewValidationError("file", fmt.Sprintf("duplicate column %q", name))
		}
		index[name] = i
	}

	var errs domain.FieldErrors
	for _, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if !slices.Contains(requiredColumns, name) && !slices.Contains(optionalColumns, name) {
			errs.Add("file", fmt.Sprintf("unknown column %q", name))
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			errs.Add("file", fmt.Sprintf("missing column %q", col))
		}
	}
	return index, errs.Err()
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
