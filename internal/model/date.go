package model

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-day layout used in CSV files and flags.
const DateFormat = "2006-01-02"

// Day returns midnight UTC of the given calendar day.
func Day(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
