package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

type stubUserService struct {
	createFn func(ctx context.Context, input service.CreateUserInput) (*model.User, error)
	listFn   func(ctx context.Context) ([]*model.User, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, input service.CreateUserInput) (*model.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.listFn(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Create_JSON(t *testing.T) {
	svc := &stubUserService{
		createFn: func(ctx context.Context, input service.CreateUserInput) (*model.User, error) {
			if input.Username != "alice" {
				t.Errorf("unexpected username: %s", input.Username)
			}
			return &model.User{ID: "u1", Username: input.Username, CreatedAt: time.Now()}, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Username != "alice" {
		t.Errorf("username = %q, want %q", resp.Username, "alice")
	}
	if resp.ID != "u1" {
		t.Errorf("id = %q, want %q", resp.ID, "u1")
	}
}

func TestUserHandler_Create_Form(t *testing.T) {
	svc := &stubUserService{
		createFn: func(ctx context.Context, input service.CreateUserInput) (*model.User, error) {
			return &model.User{ID: "u2", Username: input.Username}, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	form := url.Values{"username": {"bob"}}
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Username != "bob" {
		t.Errorf("username = %q, want %q", resp.Username, "bob")
	}
}

func TestUserHandler_Create_MissingUsername(t *testing.T) {
	svc := &stubUserService{
		createFn: func(ctx context.Context, input service.CreateUserInput) (*model.User, error) {
			return nil, service.ErrMissingUsername
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "username is required") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_InvalidJSON(t *testing.T) {
	svc := &stubUserService{
		createFn: func(ctx context.Context, input service.CreateUserInput) (*model.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{
		listFn: func(ctx context.Context) ([]*model.User, error) {
			return []*model.User{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "bob"},
			}, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []dto.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if resp[0].Username != "alice" || resp[1].Username != "bob" {
		t.Errorf("unexpected users: %+v", resp)
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	svc := &stubUserService{
		listFn: func(ctx context.Context) ([]*model.User, error) {
			return nil, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	// An empty list must encode as [], never null.
	body := strings.TrimSpace(rec.Body.String())
	if body != "[]" {
		t.Errorf("expected empty array body, got %s", body)
	}
}

func TestUserHandler_List_Error(t *testing.T) {
	svc := &stubUserService{
		listFn: func(ctx context.Context) ([]*model.User, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if !strings.HasPrefix(contentType, "text/plain") {
		t.Errorf("expected plain-text error body, got %s", contentType)
	}
}
