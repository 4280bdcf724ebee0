package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

type userService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error)
	Me(ctx context.Context) (*domain.UserDetail, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// UserHandler serves /api/users.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	h.writeDetail(w, r, detail)
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Me(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.writeDetail(w, r, detail)
}

// SetRole handles PUT /api/admin/users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	user, err := h.svc.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userDetailResponse{
		userResponse: toUserResponse(*user),
		Role:         user.Role.String(),
		LearningData: []learningWordResponse{},
	})
}

func (h *UserHandler) writeDetail(w http.ResponseWriter, r *http.Request, detail *domain.UserDetail) {
	learning, err := renderLearningWords(r.Context(), detail.Learning)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userDetailResponse{
		userResponse: toUserResponse(detail.User),
		Role:         detail.Role.String(),
		LearningData: learning,
	})
}
