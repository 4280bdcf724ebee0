package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/chapter"
	"github.com/heartmarshall/vocabulary-backend/internal/transport/dataloader"
)

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type userDetailResponse struct {
	userResponse
	Role         string                 `json:"role"`
	LearningData []learningWordResponse `json:"learningdata"`
}

type wordResponse struct {
	ID            uuid.UUID  `json:"id"`
	Lemma         string     `json:"lemma"`
	Translation   string     `json:"translation"`
	POS           string     `json:"pos"`
	Gender        *string    `json:"gender"`
	SourceLang    string     `json:"source_lang"`
	TargetLang    string     `json:"target_lang"`
	Pronunciation *string    `json:"pronunciation"`
	CreatedBy     *uuid.UUID `json:"created_by"`
	ModifiedBy    *uuid.UUID `json:"modified_by"`
}

// wordPageResponse mirrors the count/next/previous/results envelope of
// paginated listings.
type wordPageResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []wordResponse `json:"results"`
}

// embeddedWord is the subset of word fields inlined into properties and
// learning data.
type embeddedWord struct {
	WordID      uuid.UUID `json:"word_id"`
	Lemma       string    `json:"lemma"`
	Translation string    `json:"translation"`
	POS         string    `json:"pos"`
	Gender      *string   `json:"gender"`
}

type propertiesResponse struct {
	ID uuid.UUID `json:"id"`
	embeddedWord
	ChapterID uuid.UUID `json:"chapter_id"`
	Token     string    `json:"token"`
	Frequency int       `json:"frequency"`
}

type learningResponse struct {
	ID      uuid.UUID `json:"id"`
	User    uuid.UUID `json:"user"`
	Word    uuid.UUID `json:"word"`
	Learned bool      `json:"learned"`
}

type learningWordResponse struct {
	ID uuid.UUID `json:"id"`
	embeddedWord
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Learned    bool   `json:"learned"`
}

type chapterResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Public       bool       `json:"public"`
	SourceLang   string     `json:"source_lang"`
	TargetLang   string     `json:"target_lang"`
	CreatedBy    *uuid.UUID `json:"created_by"`
	ModifiedBy   *uuid.UUID `json:"modified_by"`
	CreatedDate  time.Time  `json:"created_date"`
	ModifiedDate time.Time  `json:"modified_date"`
}

type chapterDetailResponse struct {
	chapterResponse
	Words    []propertiesResponse `json:"words"`
	Analysis *analysisResponse    `json:"analysis,omitempty"`
}

type analysisResponse struct {
	Tokenized bool `json:"tokenized"`
	Lemmas    int  `json:"lemmas"`
	Matched   int  `json:"matched"`
	Fallback  int  `json:"fallback"`
	Missed    int  `json:"missed"`
	Failed    int  `json:"failed"`
	Skipped   int  `json:"skipped"`
}

type importErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type importResponse struct {
	Inserted int                   `json:"inserted"`
	Skipped  int                   `json:"skipped"`
	Errors   []importErrorResponse `json:"errors"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

func genderString(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := g.String()
	return &s
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:            w.ID,
		Lemma:         w.Lemma,
		Translation:   w.Translation,
		POS:           w.POS.String(),
		Gender:        genderString(w.Gender),
		SourceLang:    w.SourceLang.String(),
		TargetLang:    w.TargetLang.String(),
		Pronunciation: w.Pronunciation,
		CreatedBy:     w.CreatedBy,
		ModifiedBy:    w.ModifiedBy,
	}
}

func toEmbeddedWord(w *domain.Word) embeddedWord {
	return embeddedWord{
		WordID:      w.ID,
		Lemma:       w.Lemma,
		Translation: w.Translation,
		POS:         w.POS.String(),
		Gender:      genderString(w.Gender),
	}
}

func toChapterResponse(c domain.Chapter) chapterResponse {
	return chapterResponse{
		ID:           c.ID,
		Title:        c.Title,
		Body:         c.Body,
		Public:       c.Public,
		SourceLang:   c.SourceLang.String(),
		TargetLang:   c.TargetLang.String(),
		CreatedBy:    c.CreatedBy,
		ModifiedBy:   c.ModifiedBy,
		CreatedDate:  c.CreatedAt,
		ModifiedDate: c.ModifiedAt,
	}
}

func toLearningResponse(d domain.LearningData) learningResponse {
	return learningResponse{ID: d.ID, User: d.UserID, Word: d.WordID, Learned: d.Learned}
}

func toAnalysisResponse(s chapter.Summary) *analysisResponse {
	return &analysisResponse{
		Tokenized: s.Tokenized,
		Lemmas:    s.Lemmas,
		Matched:   s.Matched,
		Fallback:  s.Fallback,
		Missed:    s.Missed,
		Failed:    s.Failed,
		Skipped:   s.Skipped,
	}
}

func toImportResponse(res *domain.WordImportResult) importResponse {
	errs := make([]importErrorResponse, len(res.Errors))
	for i, e := range res.Errors {
		errs[i] = importErrorResponse{Line: e.Line, Message: e.Message}
	}
	return importResponse{Inserted: res.Inserted, Skipped: res.Skipped, Errors: errs}
}

// renderProperties embeds the referenced word fields into each record.
// Words are fetched through the request's loader in a single batch.
func renderProperties(ctx context.Context, props []domain.WordProperties) ([]propertiesResponse, error) {
	ids := make([]uuid.UUID, len(props))
	for i, p := range props {
		ids[i] = p.WordID
	}
	words, err := dataloader.FromContext(ctx).LoadWords(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]propertiesResponse, len(props))
	for i, p := range props {
		out[i] = propertiesResponse{
			ID:           p.ID,
			embeddedWord: toEmbeddedWord(words[i]),
			ChapterID:    p.ChapterID,
			Token:        p.Token,
			Frequency:    p.Frequency,
		}
	}
	return out, nil
}

func renderLearningWords(ctx context.Context, data []domain.LearningData) ([]learningWordResponse, error) {
	ids := make([]uuid.UUID, len(data))
	for i, d := range data {
		ids[i] = d.WordID
	}
	words, err := dataloader.FromContext(ctx).LoadWords(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]learningWordResponse, len(data))
	for i, d := range data {
		out[i] = learningWordResponse{
			ID:           d.ID,
			embeddedWord: toEmbeddedWord(words[i]),
			SourceLang:   words[i].SourceLang.String(),
			TargetLang:   words[i].TargetLang.String(),
			Learned:      d.Learned,
		}
	}
	return out, nil
}

func renderChapterDetail(ctx context.Context, d domain.ChapterDetail) (chapterDetailResponse, error) {
	words, err := renderProperties(ctx, d.Properties)
	if err != nil {
		return chapterDetailResponse{}, err
	}
	return chapterDetailResponse{chapterResponse: toChapterResponse(d.Chapter), Words: words}, nil
}
