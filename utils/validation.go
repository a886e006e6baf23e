// utils/validation.go
package utils

import (
	"strings"
	"time"
)

// ParseReportDate parses a YYYY-MM-DD form value into a UTC calendar date.
func ParseReportDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// ValidateHandle checks the login handle: non-empty, no spaces.
func ValidateHandle(handle string) bool {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return false
	}
	return !strings.ContainsAny(handle, " \t")
}
