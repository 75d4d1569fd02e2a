package domain

import (
	"fmt"
	"time"
)

const (
	dueDayLayout       = "2006-01-02"
	dueTimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ParseDueDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(dueDayLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse due date %q: %w", value, err)
	}
	return t, nil
}

// FormatDueDate renders a due date as the ISO timestamp the store returns.
func FormatDueDate(t time.Time) string {
	return t.UTC().Format(dueTimestampLayout)
}
