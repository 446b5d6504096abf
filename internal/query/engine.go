// Package query builds role-scoped, filtered, ordered views over the
// internship collection. Everything here is read-only: the engine
// operates on a snapshot from the record store and never mutates it.
package query

import (
	"sort"
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/eligibility"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/user"
)

// SortKey selects the ordering of a filtered view.
type SortKey string

const (
	// SortByTitle - alphabetical by title, case-insensitive. Default.
	SortByTitle SortKey = "title"
	// SortByOpeningDate - by opening date. Dates are ISO-formatted, so
	// lexicographic order equals chronological order.
	SortByOpeningDate SortKey = "openingDate"
	// SortByClosingDate - by closing date.
	SortByClosingDate SortKey = "closingDate"
)

// FilterSettings is the per-session query parameter object. It carries
// no identity and is not persisted; a cleared settings value with the
// default sort is equivalent to "no filter".
type FilterSettings struct {
	// Status - only postings in this approval state. Nil means any.
	Status *internship.Status

	// Major - only postings whose preferred major matches this label
	// via the alias-group matcher. Empty means any.
	Major string

	// Level - only postings of this level. Nil means any.
	Level *internship.Level

	// Visible - visibility tri-state: nil = any, true = visible only,
	// false = hidden only.
	Visible *bool

	// SortBy - ordering of the result. Empty falls back to title.
	SortBy SortKey
}

// NewFilterSettings returns cleared settings with the default sort.
func NewFilterSettings() FilterSettings {
	return FilterSettings{SortBy: SortByTitle}
}

// IsActive reports whether anything beyond the default ordering is set.
func (f FilterSettings) IsActive() bool {
	return f.Status != nil || f.Major != "" || f.Level != nil || f.Visible != nil ||
		(f.SortBy != "" && f.SortBy != SortByTitle)
}

// Clear resets every filter and restores the default sort.
func (f *FilterSettings) Clear() {
	*f = NewFilterSettings()
}

// matches applies the four optional filters to one posting.
func (f FilterSettings) matches(i *internship.Internship) bool {
	if f.Status != nil && i.Status != *f.Status {
		return false
	}
	if f.Major != "" && !eligibility.MajorsMatch(f.Major, i.PreferredMajor) {
		return false
	}
	if f.Level != nil && i.Level != *f.Level {
		return false
	}
	if f.Visible != nil && i.Visible != *f.Visible {
		return false
	}
	return true
}

// visibleTo applies role scoping: students see only visible, approved
// postings they are eligible for; representatives see only their own;
// staff see everything.
func visibleTo(actor *user.User, i *internship.Internship) bool {
	switch actor.Role {
	case user.RoleStudent:
		if actor.Student == nil {
			return false
		}
		return i.AcceptsApplications() &&
			eligibility.MajorsMatch(actor.Student.Major, i.PreferredMajor) &&
			eligibility.LevelAllowed(actor.Student.Year, i.Level)
	case user.RoleRepresentative:
		return i.IsOwnedBy(actor.ID)
	case user.RoleStaff:
		return true
	default:
		return false
	}
}

// FilteredView returns the postings the actor may see under the given
// settings, ordered by the configured sort key. The input slice is not
// modified; sorting is stable, so postings with equal keys keep their
// store order.
func FilteredView(all []*internship.Internship, settings FilterSettings, actor *user.User) []*internship.Internship {
	result := make([]*internship.Internship, 0, len(all))
	for _, i := range all {
		if settings.matches(i) && visibleTo(actor, i) {
			result = append(result, i)
		}
	}

	switch settings.SortBy {
	case SortByOpeningDate:
		sort.SliceStable(result, func(a, b int) bool {
			return result[a].OpeningDate < result[b].OpeningDate
		})
	case SortByClosingDate:
		sort.SliceStable(result, func(a, b int) bool {
			return result[a].ClosingDate < result[b].ClosingDate
		})
	default:
		sort.SliceStable(result, func(a, b int) bool {
			return strings.ToLower(result[a].Title) < strings.ToLower(result[b].Title)
		})
	}
	return result
}
