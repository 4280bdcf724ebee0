package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/wordprops"
)

type wordPropsService interface {
	List(ctx context.Context) ([]domain.WordProperties, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error)
	Create(ctx context.Context, input wordprops.CreateInput) (*domain.WordProperties, error)
	Update(ctx context.Context, id uuid.UUID, input wordprops.UpdateInput) (*domain.WordProperties, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WordPropsHandler serves /api/wordproperties.
type WordPropsHandler struct {
	svc wordPropsService
	log *slog.Logger
}

func NewWordPropsHandler(svc wordPropsService, logger *slog.Logger) *WordPropsHandler {
	return &WordPropsHandler{svc: svc, log: logger.With("handler", "wordprops")}
}

type wordPropsCreateRequest struct {
	Word      string `json:"word" validate:"required,uuid"`
	Chapter   string `json:"chapter" validate:"required,uuid"`
	Token     string `json:"token"`
	Frequency int    `json:"frequency" validate:"gte=0"`
}

type wordPropsUpdateRequest struct {
	Token     string `json:"token"`
	Frequency int    `json:"frequency" validate:"gte=0"`
}

// List handles GET /api/wordproperties.
func (h *WordPropsHandler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.svc.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeProps(w, r, http.StatusOK, props)
}

// Create handles POST /api/wordproperties.
func (h *WordPropsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordPropsCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), wordprops.CreateInput{
		WordID:    uuid.MustParse(req.Word),
		ChapterID: uuid.MustParse(req.Chapter),
		Token:     req.Token,
		Frequency: req.Frequency,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusCreated, p)
}

// Get handles GET /api/wordproperties/{id}.
func (h *WordPropsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, p)
}

// Update handles PUT /api/wordproperties/{id}.
func (h *WordPropsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var req wordPropsUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, wordprops.UpdateInput{Token: req.Token, Frequency: req.Frequency})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeOne(w, r, http.StatusOK, p)
}

// Delete handles DELETE /api/wordproperties/{id}.
func (h *WordPropsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *WordPropsHandler) writeOne(w http.ResponseWriter, r *http.Request, status int, p *domain.WordProperties) {
	out, err := renderProperties(r.Context(), []domain.WordProperties{*p})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, out[0])
}

func (h *WordPropsHandler) writeProps(w http.ResponseWriter, r *http.Request, status int, props []domain.WordProperties) {
	out, err := renderProperties(r.Context(), props)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, out)
}
