package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

type stubExerciseService struct {
	addFn  func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error)
	logsFn func(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error)
}

func (s *stubExerciseService) AddExercise(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
	return s.addFn(ctx, input)
}

func (s *stubExerciseService) GetLogs(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error) {
	return s.logsFn(ctx, input)
}

// newExerciseRouter mounts the handler on a chi router so URL params resolve.
func newExerciseRouter(h *ExerciseHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/users/{id}/exercises", h.Add)
	r.Get("/api/users/{id}/logs", h.Logs)
	return r
}

func TestExerciseHandler_Add_JSON(t *testing.T) {
	date := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	svc := &stubExerciseService{
		addFn: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			if input.UserID != "u1" {
				t.Errorf("user id = %q, want %q", input.UserID, "u1")
			}
			if input.Duration != 30 {
				t.Errorf("duration = %d, want 30", input.Duration)
			}
			user := &model.User{ID: "u1", Username: "alice"}
			exercise := &model.Exercise{
				ID:          "e1",
				UserID:      "u1",
				Description: input.Description,
				Duration:    input.Duration,
				Date:        date,
			}
			return user, exercise, nil
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	body := `{"description":"run","duration":30,"date":"2023-01-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/exercises", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ExerciseResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ID != "u1" {
		t.Errorf("id = %q, want user id %q", resp.ID, "u1")
	}
	if resp.Username != "alice" {
		t.Errorf("username = %q, want %q", resp.Username, "alice")
	}
	if resp.Description != "run" {
		t.Errorf("description = %q, want %q", resp.Description, "run")
	}
	if resp.Duration != 30 {
		t.Errorf("duration = %d, want 30", resp.Duration)
	}
	if resp.Date != "Thu Jan 05 2023" {
		t.Errorf("date = %q, want %q", resp.Date, "Thu Jan 05 2023")
	}
}

func TestExerciseHandler_Add_Form(t *testing.T) {
	svc := &stubExerciseService{
		addFn: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			if input.Duration != 45 {
				t.Errorf("duration = %d, want 45", input.Duration)
			}
			user := &model.User{ID: "u1", Username: "alice"}
			exercise := &model.Exercise{
				Description: input.Description,
				Duration:    input.Duration,
				Date:        time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			}
			return user, exercise, nil
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	form := url.Values{
		"description": {"swim"},
		"duration":    {"45"},
		"date":        {"2023-02-01"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/exercises", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExerciseHandler_Add_InvalidFormDuration(t *testing.T) {
	svc := &stubExerciseService{
		addFn: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			t.Fatal("service should not be called")
			return nil, nil, nil
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	form := url.Values{"duration": {"not-a-number"}}
	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/exercises", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestExerciseHandler_Add_UserNotFound(t *testing.T) {
	svc := &stubExerciseService{
		addFn: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			return nil, nil, service.ErrUserNotFound
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/users/missing/exercises", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestExerciseHandler_Add_InvalidDate(t *testing.T) {
	svc := &stubExerciseService{
		addFn: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			return nil, nil, service.ErrInvalidDate
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/users/u1/exercises", strings.NewReader(`{"date":"garbage"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestExerciseHandler_Logs(t *testing.T) {
	svc := &stubExerciseService{
		logsFn: func(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error) {
			if input.From != "2023-01-01" || input.To != "2023-01-31" {
				t.Errorf("unexpected bounds: from=%q to=%q", input.From, input.To)
			}
			if input.Limit != 5 {
				t.Errorf("limit = %d, want 5", input.Limit)
			}
			return &service.GetLogsOutput{
				User: &model.User{ID: "u1", Username: "alice"},
				Exercises: []*model.Exercise{
					{Description: "run", Duration: 30, Date: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
				},
			}, nil
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/logs?from=2023-01-01&to=2023-01-31&limit=5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.LogsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
	if resp.Count != len(resp.Log) {
		t.Errorf("count %d does not match log length %d", resp.Count, len(resp.Log))
	}
	if resp.Log[0].Date != "Thu Jan 05 2023" {
		t.Errorf("date = %q, want %q", resp.Log[0].Date, "Thu Jan 05 2023")
	}
}

func TestExerciseHandler_Logs_EmptyLog(t *testing.T) {
	svc := &stubExerciseService{
		logsFn: func(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error) {
			return &service.GetLogsOutput{
				User: &model.User{ID: "u1", Username: "alice"},
			}, nil
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/logs", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// Zero exercises is a normal response, not an error.
	var resp dto.LogsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
	if resp.Log == nil || len(resp.Log) != 0 {
		t.Errorf("log = %v, want empty slice", resp.Log)
	}
}

func TestExerciseHandler_Logs_InvalidLimit(t *testing.T) {
	svc := &stubExerciseService{
		logsFn: func(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	tests := []struct {
		name  string
		limit string
	}{
		{"non-numeric", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users/u1/logs?limit="+tt.limit, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestExerciseHandler_Logs_UserNotFound(t *testing.T) {
	svc := &stubExerciseService{
		logsFn: func(ctx context.Context, input service.GetLogsInput) (*service.GetLogsOutput, error) {
			return nil, service.ErrUserNotFound
		},
	}
	h := NewExerciseHandler(svc, discardLogger())
	router := newExerciseRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing/logs", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
