package dto

import "github.com/fitlog/fitlog/internal/model"

// AddExerciseRequest represents the request body for adding an exercise.
// Date is a raw string; empty means "today".
type AddExerciseRequest struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// ExerciseResponse represents the add-exercise result: the created exercise
// merged with its owning user. The id field is the user's id, not the
// exercise's.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry represents a single exercise inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogsResponse represents a user's exercise log.
// Count always equals len(Log).
type LogsResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// ToExerciseResponse merges a user and an exercise into the add-exercise response.
func ToExerciseResponse(user *model.User, exercise *model.Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
	}
}

// ToLogsResponse shapes a user's exercises into the log response.
// Always returns a non-nil Log slice so an empty log encodes as [].
func ToLogsResponse(user *model.User, exercises []*model.Exercise) *LogsResponse {
	log := make([]LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		log = append(log, LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.DateString(),
		})
	}

	return &LogsResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}
}
