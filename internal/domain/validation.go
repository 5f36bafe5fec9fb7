package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports a single invalid BirthData field. The chart
// assembler validates before any arithmetic runs, so malformed input
// surfaces here instead of as NaN-poisoned results downstream.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid birth data: %s %s", e.Field, e.Reason)
}

// Validate checks a BirthData for the ranges and formats the calculation
// requires. Returns a *ValidationError describing the first problem found.
func (b BirthData) Validate() error {
	if b.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if _, _, err := ParseClockTime(b.Time); err != nil {
		return &ValidationError{Field: "time", Reason: err.Error()}
	}
	if b.Latitude < -90 || b.Latitude > 90 {
		return &ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return &ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	return nil
}

// ParseClockTime parses an HH:MM 24-hour string into hour and minute.
func ParseClockTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("must be in HH:MM format")
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour must be 0-23")
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute must be 0-59")
	}

	return hour, minute, nil
}
