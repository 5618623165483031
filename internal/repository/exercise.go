package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

// ExerciseFilter defines filters for listing exercises.
// From and To are inclusive day bounds on the exercise date.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

// CreateExercise inserts a new exercise into the database.
func (r *Repository) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	query := `
		INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil
}

// ListExercises retrieves exercises matching the filter, sorted by date
// ascending. A limit of 0 means no limit. Ties on date are broken by id so
// results are deterministic.
func (r *Repository) ListExercises(ctx context.Context, filter ExerciseFilter, limit int) ([]*model.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration, date, created_at
		FROM exercises
		WHERE user_id = $1
	`
	args := []any{filter.UserID}
	argIndex := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY date ASC, id ASC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		var exercise model.Exercise
		err := rows.Scan(
			&exercise.ID,
			&exercise.UserID,
			&exercise.Description,
			&exercise.Duration,
			&exercise.Date,
			&exercise.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}
