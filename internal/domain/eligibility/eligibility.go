// Package eligibility holds the pure rules deciding whether a student
// may view or apply to a posting, and whether an actor is authorized to
// mutate one. No state, no I/O - just predicates over domain values.
package eligibility

import (
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/internship"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAJOR MATCHING
//
// Matching is deliberately permissive: majors come in as free text from
// several record sources with no shared vocabulary, so we prefer a
// false positive over blocking a legitimate match on naming alone.
// ══════════════════════════════════════════════════════════════════════════════

// majorGroups is the fixed table of synonym groups. Two majors match if
// both hit the same group by substring containment. Hard-coded: the set
// of programmes changes rarely and a config knob has no owner.
var majorGroups = [][]string{
	{"csc", "cs", "computer science", "computing", "comp sci"},
	{"eee", "electrical", "electrical engineering", "electrical and electronic engineering"},
	{"mech", "mechanical", "mechanical engineering", "mech eng"},
	{"dsai", "data science and ai", "data science & ai"},
	{"ce", "computer engineering"},
	{"chem", "chemical", "chemical engineering"},
	{"env", "environmental", "environmental engineering"},
	{"mat", "materials", "materials science", "materials engineering"},
}

// MajorsMatch reports whether a student's major is compatible with an
// internship's preferred major. Case-insensitive. Falls back to raw
// substring containment in either direction when no alias group claims
// both sides.
func MajorsMatch(studentMajor, internshipMajor string) bool {
	s := strings.ToLower(strings.TrimSpace(studentMajor))
	i := strings.ToLower(strings.TrimSpace(internshipMajor))
	if s == "" || i == "" {
		return false
	}

	for _, group := range majorGroups {
		studentInGroup, internshipInGroup := false, false
		for _, alias := range group {
			if strings.Contains(s, alias) {
				studentInGroup = true
			}
			if strings.Contains(i, alias) {
				internshipInGroup = true
			}
		}
		if studentInGroup && internshipInGroup {
			return true
		}
	}

	return strings.Contains(s, i) || strings.Contains(i, s)
}

// ══════════════════════════════════════════════════════════════════════════════
// LEVEL ELIGIBILITY
// ══════════════════════════════════════════════════════════════════════════════

// maxBasicOnlyYear is the last year of study restricted to BASIC postings.
const maxBasicOnlyYear = 2

// LevelAllowed reports whether a student in the given year of study may
// view or apply to a posting of the given level. Years 1-2 are limited
// to BASIC; year 3 and above see all levels.
func LevelAllowed(yearOfStudy int, level internship.Level) bool {
	if yearOfStudy > maxBasicOnlyYear {
		return true
	}
	return level == internship.LevelBasic
}

// ══════════════════════════════════════════════════════════════════════════════
// AUTHORIZATION
// ══════════════════════════════════════════════════════════════════════════════

// CanManage reports whether the acting representative owns the posting.
// Ownership is exact case-insensitive id equality.
func CanManage(repID string, i *internship.Internship) bool {
	return i.IsOwnedBy(repID)
}
