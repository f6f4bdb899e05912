package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/constancia/internal/models"
)

// DateAtLocation truncates a timestamp to its calendar day in the given
// location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayKey renders a timestamp as the day-granularity string stored in the
// document ledgers.
func DayKey(value time.Time) string {
	return value.Format(models.DayFormat)
}

// ParseDay parses a stored day key back into a midnight timestamp.
func ParseDay(value string) (time.Time, error) {
	day, err := time.Parse(models.DayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrValidation, value)
	}
	return day, nil
}

// WeekStart returns the Monday on or before the given day (ISO week,
// Monday = weekday 0).
func WeekStart(value time.Time) time.Time {
	day := time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
