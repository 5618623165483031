package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitlog/fitlog/internal/cache"
	"github.com/fitlog/fitlog/internal/metrics"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// ExerciseService handles exercise business logic.
type ExerciseService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(repo *repository.Repository, cache *cache.Cache, recorder metrics.Recorder) *ExerciseService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ExerciseService{
		repo:    repo,
		cache:   cache,
		metrics: recorder,
	}
}

// AddExerciseInput defines input for adding an exercise.
// Date is the raw caller-supplied value; empty means "today".
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    int
	Date        string
}

// AddExercise records a new exercise against an existing user.
// Returns the owning user alongside the created exercise so the handler can
// shape the combined response.
func (s *ExerciseService) AddExercise(ctx context.Context, input AddExerciseInput) (*model.User, *model.Exercise, error) {
	user, err := s.resolveUser(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}

	date := model.Day(time.Now().UTC())
	if input.Date != "" {
		date, err = ParseDay(input.Date)
		if err != nil {
			return nil, nil, err
		}
	}

	exercise := &model.Exercise{
		ID:          ulid.Make().String(),
		UserID:      user.ID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateExercise(ctx, exercise); err != nil {
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.metrics.IncExerciseCreated()

	return user, exercise, nil
}

// GetLogsInput defines input for querying a user's exercise log.
// From and To are raw caller-supplied inclusive day bounds; empty means
// unbounded. Limit of 0 means no limit.
type GetLogsInput struct {
	UserID string
	From   string
	To     string
	Limit  int
}

// GetLogsOutput bundles the owning user with the matching exercises.
type GetLogsOutput struct {
	User      *model.User
	Exercises []*model.Exercise
}

// GetLogs returns a user's exercises filtered by the inclusive date bounds,
// sorted by date ascending and truncated to the limit.
func (s *ExerciseService) GetLogs(ctx context.Context, input GetLogsInput) (*GetLogsOutput, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveLogQueryDuration(time.Since(start))
	}()
	s.metrics.IncLogQuery()

	user, err := s.resolveUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	filter := repository.ExerciseFilter{UserID: user.ID}

	if input.From != "" {
		from, err := ParseDay(input.From)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}

	if input.To != "" {
		to, err := ParseDay(input.To)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}

	exercises, err := s.repo.ListExercises(ctx, filter, input.Limit)
	if err != nil {
		return nil, err
	}

	return &GetLogsOutput{
		User:      user,
		Exercises: exercises,
	}, nil
}

// resolveUser looks up a user by id, cache first. Unknown ids (including
// malformed ones) are negatively cached and reported as ErrUserNotFound.
func (s *ExerciseService) resolveUser(ctx context.Context, id string) (*model.User, error) {
	cached, err := s.cache.GetUser(ctx, id)
	if err == nil {
		s.metrics.IncUserCacheHit()
		return cached.ToUser(id), nil
	}

	if errors.Is(err, cache.ErrCacheMiss) {
		s.metrics.IncUserCacheMiss()
		isNegative, _ := s.cache.IsNegativelyCached(ctx, id)
		if isNegative {
			return nil, ErrUserNotFound
		}
	}
	// On a Redis error, fall through to the database.

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = s.cache.SetNegativeCache(ctx, id)
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Best-effort cache backfill.
	_ = s.cache.SetUser(ctx, user)

	return user, nil
}
