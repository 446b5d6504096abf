// Package shared contains common domain types, errors, and value objects
// that are used across all domain packages.
package shared

import (
	"strings"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════
// ISODate Value Object
// ═══════════════════════════════════════════════════════════════════════════

// isoLayout is the calendar date layout used everywhere in the system.
const isoLayout = "2006-01-02"

// ISODate represents a calendar date in ISO format (YYYY-MM-DD).
// Because the format is fixed-width, lexicographic order of valid
// ISODate values equals chronological order.
type ISODate string

// IsValid checks that the date parses as a real calendar date.
func (d ISODate) IsValid() bool {
	_, err := time.Parse(isoLayout, string(d))
	return err == nil
}

// String returns the string representation.
func (d ISODate) String() string {
	return string(d)
}

// Time converts the date to a time.Time at midnight UTC.
// Returns the zero time for invalid dates.
func (d ISODate) Time() time.Time {
	t, err := time.Parse(isoLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before reports whether d is strictly earlier than other.
func (d ISODate) Before(other ISODate) bool {
	return string(d) < string(other)
}

// After reports whether d is strictly later than other.
func (d ISODate) After(other ISODate) bool {
	return string(d) > string(other)
}

// WithinWindow reports whether d falls inside [open, close], both inclusive.
func (d ISODate) WithinWindow(open, close ISODate) bool {
	return !d.Before(open) && !d.After(close)
}

// NewISODate creates a new ISODate with validation.
func NewISODate(value string) (ISODate, error) {
	d := ISODate(strings.TrimSpace(value))
	if !d.IsValid() {
		return "", NewDomainError("shared", "NewISODate", ErrInvalidFormat, "date must be in YYYY-MM-DD format")
	}
	return d, nil
}

// DateOf converts a time.Time to an ISODate.
func DateOf(t time.Time) ISODate {
	return ISODate(t.Format(isoLayout))
}

// Today returns the current date.
func Today() ISODate {
	return DateOf(time.Now())
}

// ═══════════════════════════════════════════════════════════════════════════
// Identity helpers
// ═══════════════════════════════════════════════════════════════════════════

// SameID compares two identifiers the way the whole system does:
// exact equality, case-insensitive.
func SameID(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
