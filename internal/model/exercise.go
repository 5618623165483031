package model

import "time"

// DayFormat renders a date the way the API exposes it, e.g. "Thu Jan 05 2023".
const DayFormat = "Mon Jan 02 2006"

// Exercise represents a single logged exercise entry.
// UserID is a weak reference: existence is checked by the service at write
// time, not enforced by the store.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateString formats the exercise date as a human-readable day string.
func (e *Exercise) DateString() string {
	return e.Date.Format(DayFormat)
}

// Day truncates a timestamp to day granularity in UTC.
// Exercise dates are calendar days; the time-of-day portion is never stored.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
