package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/chapter"
)

type chapterService interface {
	List(ctx context.Context) ([]domain.Chapter, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ChapterDetail, error)
	Save(ctx context.Context, input chapter.SaveInput) (*chapter.SaveResult, error)
	Import(ctx context.Context, input chapter.ImportInput) (*chapter.SaveResult, error)
	Update(ctx context.Context, id uuid.UUID, input chapter.UpdateInput) (*domain.Chapter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChapterHandler serves /api/chapters.
type ChapterHandler struct {
	svc chapterService
	log *slog.Logger
}

func NewChapterHandler(svc chapterService, logger *slog.Logger) *ChapterHandler {
	return &ChapterHandler{svc: svc, log: logger.With("handler", "chapter")}
}

type chapterRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body" validate:"required"`
	Public     bool   `json:"public"`
	SourceLang string `json:"source_lang" validate:"required"`
	TargetLang string `json:"target_lang" validate:"required"`
}

type chapterImportRequest struct {
	URL        string `json:"url" validate:"required,http_url"`
	Public     bool   `json:"public"`
	SourceLang string `json:"source_lang" validate:"required"`
	TargetLang string `json:"target_lang" validate:"required"`
}

type chapterUpdateRequest struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	Public     *bool   `json:"public"`
	SourceLang *string `json:"source_lang"`
	TargetLang *string `json:"target_lang"`
}

func languagePtr(s *string) *domain.Language {
	if s == nil {
		return nil
	}
	l := domain.Language(*s)
	return &l
}

// List handles GET /api/chapters.
func (h *ChapterHandler) List(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.svc.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]chapterResponse, len(chapters))
	for i, c := range chapters {
		out[i] = toChapterResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/chapters.
func (h *ChapterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req chapterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Save(r.Context(), chapter.SaveInput{
		Title:      req.Title,
		Body:       req.Body,
		Public:     req.Public,
		SourceLang: domain.Language(req.SourceLang),
		TargetLang: domain.Language(req.TargetLang),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeSaved(w, r, result)
}

// Import handles POST /api/chapters/import.
func (h *ChapterHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req chapterImportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Import(r.Context(), chapter.ImportInput{
		URL:        req.URL,
		Public:     req.Public,
		SourceLang: domain.Language(req.SourceLang),
		TargetLang: domain.Language(req.TargetLang),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeSaved(w, r, result)
}

func (h *ChapterHandler) writeSaved(w http.ResponseWriter, r *http.Request, result *chapter.SaveResult) {
	resp, err := renderChapterDetail(r.Context(), result.Detail)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	resp.Analysis = toAnalysisResponse(result.Summary)
	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/chapters/{id}.
func (h *ChapterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp, err := renderChapterDetail(r.Context(), *detail)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/chapters/{id}. Absent fields are left unchanged.
func (h *ChapterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var req chapterUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, chapter.UpdateInput{
		Title:      req.Title,
		Body:       req.Body,
		Public:     req.Public,
		SourceLang: languagePtr(req.SourceLang),
		TargetLang: languagePtr(req.TargetLang),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChapterResponse(*c))
}

// Delete handles DELETE /api/chapters/{id}.
func (h *ChapterHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
