package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/word"
)

type wordService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, input word.ListInput) (*domain.Page[domain.Word], error)
	Create(ctx context.Context, input word.WordInput) (*domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, input word.WordInput) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Import(ctx context.Context, r io.Reader) (*domain.WordImportResult, error)
}

// WordHandler serves the dictionary endpoints.
type WordHandler struct {
	svc         wordService
	log         *slog.Logger
	maxCSVBytes int64
}

func NewWordHandler(svc wordService, maxCSVBytes int64, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, maxCSVBytes: maxCSVBytes, log: logger.With("handler", "word")}
}

// Field rules are enforced by the word service; the tags only reject
// structurally empty requests early.
type wordRequest struct {
	Lemma         string  `json:"lemma" validate:"required"`
	Translation   string  `json:"translation" validate:"required"`
	POS           string  `json:"pos" validate:"required"`
	Gender        *string `json:"gender"`
	SourceLang    string  `json:"source_lang" validate:"required"`
	TargetLang    string  `json:"target_lang" validate:"required"`
	Pronunciation *string `json:"pronunciation"`
}

func (req wordRequest) toInput() word.WordInput {
	in := word.WordInput{
		Lemma:         req.Lemma,
		Translation:   req.Translation,
		POS:           domain.PartOfSpeech(req.POS),
		SourceLang:    domain.Language(req.SourceLang),
		TargetLang:    domain.Language(req.TargetLang),
		Pronunciation: req.Pronunciation,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		in.Gender = &g
	}
	return in
}

// List handles GET /api/words?startswith=&page=&page_size=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := queryInt(r, "page")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	size, err := queryInt(r, "page_size")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	input := word.ListInput{StartsWith: q.Get("startswith"), Page: page, PageSize: size}
	if v := q.Get("source_lang"); v != "" {
		lang := domain.Language(v)
		input.SourceLang = &lang
	}
	if v := q.Get("target_lang"); v != "" {
		lang := domain.Language(v)
		input.TargetLang = &lang
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := wordPageResponse{Count: result.Total, Results: make([]wordResponse, len(result.Items))}
	for i, item := range result.Items {
		resp.Results[i] = toWordResponse(item)
	}
	if result.HasNext() {
		resp.Next = pageLink(r, result.Number+1)
	}
	if result.HasPrevious() {
		resp.Previous = pageLink(r, result.Number-1)
	}

	writeJSON(w, http.StatusOK, resp)
}

// pageLink rebuilds the request URL with another page number. The first
// page is linked without the page parameter.
func pageLink(r *http.Request, page int) *string {
	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	link := u.String()
	return &link
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	wd, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*wd))
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	wd, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordResponse(*wd))
}

// Update handles PUT /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var req wordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	wd, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*wd))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/admin/words/import with a CSV request body.
func (h *WordHandler) Import(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.maxCSVBytes)

	result, err := h.svc.Import(r.Context(), body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		respondError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "words imported",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("rejected", len(result.Errors)),
	)
	writeJSON(w, http.StatusOK, toImportResponse(result))
}
