package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

// UserService defines the user operations the handler depends on.
type UserService interface {
	CreateUser(ctx context.Context, input service.CreateUserInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Username = r.PostFormValue("username")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	user, err := h.svc.CreateUser(r.Context(), service.CreateUserInput{
		Username: req.Username,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created",
		"user_id", user.ID,
		"username", user.Username,
	)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// handleServiceError maps service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingUsername):
		writeError(w, http.StatusBadRequest, service.ErrMissingUsername.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
