// Package dateutils provides the date operations used by the ledger stores
// and statistics engine. All dates in the ledger are day-precision ISO
// strings; months are YYYY-MM.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layout constants used throughout the application
const (
	LayoutISODate = "2006-01-02"
	LayoutMonth   = "2006-01"
)

// ParseISODate parses a strict YYYY-MM-DD calendar date.
// Invalid calendar dates (2024-02-30, 2024-13-01) are rejected.
func ParseISODate(dateStr string) (time.Time, error) {
	t, err := time.Parse(LayoutISODate, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// ParseMonth parses a strict YYYY-MM month.
func ParseMonth(monthStr string) (time.Time, error) {
	t, err := time.Parse(LayoutMonth, strings.TrimSpace(monthStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", monthStr, err)
	}
	return t, nil
}

// MonthRange returns the first and last calendar day of a YYYY-MM month as
// ISO date strings. AddDate handles the December to January rollover.
func MonthRange(monthStr string) (string, string, error) {
	first, err := ParseMonth(monthStr)
	if err != nil {
		return "", "", err
	}
	last := first.AddDate(0, 1, -1)
	return first.Format(LayoutISODate), last.Format(LayoutISODate), nil
}

// Compare compares two dates at day precision and returns:
//
//	-1 if a is before b
//	 0 if a equals b
//	 1 if a is after b
func Compare(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	if a.Before(b) {
		return -1
	} else if a.After(b) {
		return 1
	}
	return 0
}

// InRange reports whether d falls within [start, end], inclusive on both
// bounds.
func InRange(d, start, end time.Time) bool {
	return Compare(d, start) >= 0 && Compare(d, end) <= 0
}
