package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISODate_Validation(t *testing.T) {
	d, err := NewISODate("2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, ISODate("2026-03-15"), d)

	d, err = NewISODate("  2026-03-15  ")
	assert.NoError(t, err)
	assert.Equal(t, ISODate("2026-03-15"), d)

	_, err = NewISODate("15/03/2026")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewISODate("2026-02-30")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewISODate("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestISODate_Ordering(t *testing.T) {
	early := ISODate("2026-01-01")
	late := ISODate("2026-12-31")

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
	assert.False(t, early.After(early))
}

func TestISODate_WithinWindow(t *testing.T) {
	open := ISODate("2026-03-01")
	close := ISODate("2026-03-31")

	// Both ends inclusive.
	assert.True(t, open.WithinWindow(open, close))
	assert.True(t, close.WithinWindow(open, close))
	assert.True(t, ISODate("2026-03-15").WithinWindow(open, close))

	assert.False(t, ISODate("2026-02-28").WithinWindow(open, close))
	assert.False(t, ISODate("2026-04-01").WithinWindow(open, close))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, ISODate("2026-08-31"), DateOf(ts))
}

func TestSameID(t *testing.T) {
	assert.True(t, SameID("S001", "s001"))
	assert.True(t, SameID(" S001 ", "S001"))
	assert.False(t, SameID("S001", "S002"))
	assert.True(t, SameID("", ""))
}
