package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitlog/fitlog/internal/cache"
	"github.com/fitlog/fitlog/internal/metrics"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// UserService handles user business logic.
type UserService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository, cache *cache.Cache, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		repo:    repo,
		cache:   cache,
		metrics: recorder,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Username string
}

// CreateUser registers a new user. Usernames are not unique: registering the
// same name twice creates two distinct users.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	user := &model.User{
		ID:        ulid.Make().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()

	// Warm the cache; a failure here only costs a later DB lookup.
	_ = s.cache.SetUser(ctx, user)

	return user, nil
}

// ListUsers retrieves all registered users.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}
