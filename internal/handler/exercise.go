package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

// ExerciseService defines the exercise operations the handler depends on.
type ExerciseService interface {
	AddExercise(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error)
	GetLogs(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error)
}

// ExerciseHandler handles HTTP requests for exercise operations.
type ExerciseHandler struct {
	svc    ExerciseService
	logger *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(svc ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		svc:    svc,
		logger: logger,
	}
}

// Add handles POST /api/users/{id}/exercises.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.AddExerciseRequest

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Description = r.PostFormValue("description")
		req.Date = r.PostFormValue("date")

		if raw := r.PostFormValue("duration"); raw != "" {
			duration, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid duration")
				return
			}
			req.Duration = duration
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	user, exercise, err := h.svc.AddExercise(r.Context(), service.AddExerciseInput{
		UserID:      userID,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("exercise_created",
		"exercise_id", exercise.ID,
		"user_id", user.ID,
		"date", exercise.DateString(),
	)

	writeJSON(w, http.StatusOK, dto.ToExerciseResponse(user, exercise))
}

// Logs handles GET /api/users/{id}/logs.
func (h *ExerciseHandler) Logs(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	query := r.URL.Query()

	input := service.GetLogsInput{
		UserID: userID,
		From:   query.Get("from"),
		To:     query.Get("to"),
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		input.Limit = limit
	}

	output, err := h.svc.GetLogs(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogsResponse(output.User, output.Exercises))
}

// handleServiceError maps service errors to HTTP responses.
func (h *ExerciseHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, service.ErrInvalidDate.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
