package service

import (
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

// Accepted input layouts for dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	model.DayFormat,
}

// ParseDay parses a caller-supplied date into a day-granularity UTC time.
// Returns ErrInvalidDate when no accepted layout matches.
func ParseDay(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Day(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
