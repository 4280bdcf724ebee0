package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

type learningService interface {
	List(ctx context.Context) ([]domain.LearningData, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.LearningData, error)
	Create(ctx context.Context, wordID uuid.UUID, learned bool) (*domain.LearningData, error)
	SetLearned(ctx context.Context, id uuid.UUID, learned bool) (*domain.LearningData, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LearningHandler serves /api/learningdata.
type LearningHandler struct {
	svc learningService
	log *slog.Logger
}

func NewLearningHandler(svc learningService, logger *slog.Logger) *LearningHandler {
	return &LearningHandler{svc: svc, log: logger.With("handler", "learning")}
}

type learningCreateRequest struct {
	Word    string `json:"word" validate:"required,uuid"`
	Learned bool   `json:"learned"`
}

type learningUpdateRequest struct {
	Learned bool `json:"learned"`
}

// List handles GET /api/learningdata.
func (h *LearningHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]learningResponse, len(data))
	for i, d := range data {
		out[i] = toLearningResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/learningdata.
func (h *LearningHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req learningCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), uuid.MustParse(req.Word), req.Learned)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLearningResponse(*d))
}

// Get handles GET /api/learningdata/{id}.
func (h *LearningHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLearningResponse(*d))
}

// Update handles PUT /api/learningdata/{id}.
func (h *LearningHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var req learningUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	d, err := h.svc.SetLearned(r.Context(), id, req.Learned)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLearningResponse(*d))
}

// Delete handles DELETE /api/learningdata/{id}.
func (h *LearningHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
