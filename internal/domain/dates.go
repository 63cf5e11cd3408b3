package domain

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// naiveLayout matches timestamps the backend serializes without a
	// zone offset; they are read as UTC.
	naiveLayout = "2006-01-02T15:04:05"
)

// ParseDate parses a date string with field-aware errors. Accepts
// YYYY-MM-DD (snapshot files) or a timestamp (API payloads, RFC 3339
// or zone-less); timestamps are truncated to their calendar day in UTC.
func ParseDate(value, field string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := ParseTimestamp(value, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD or a timestamp)", field, value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseTimestamp parses a full-precision timestamp, RFC 3339 first and
// the backend's zone-less form second.
func ParseTimestamp(value, field string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(naiveLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid timestamp %q", field, value)
	}
	return t.UTC(), nil
}

// ParseOptionalDate parses an optional date with field-aware errors.
// Nil or empty input yields nil without error.
func ParseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(*value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
