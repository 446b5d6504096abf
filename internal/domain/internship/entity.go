// Package internship contains the internship posting domain model.
// This is core business logic - no external dependencies here.
package internship

import (
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Level defines the difficulty tier of an internship posting.
type Level string

const (
	// LevelBasic - open to all students.
	LevelBasic Level = "BASIC"
	// LevelIntermediate - restricted to year 3 and above.
	LevelIntermediate Level = "INTERMEDIATE"
	// LevelAdvanced - restricted to year 3 and above.
	LevelAdvanced Level = "ADVANCED"
)

// IsValid checks that the level is one of the known tiers.
func (l Level) IsValid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// String returns the symbolic name used on the wire.
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a persisted level name. Unknown values fall back to
// BASIC so that a malformed row never blocks loading the collection.
func ParseLevel(s string) Level {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return LevelBasic
	}
	return l
}

// Status defines the approval state of an internship posting.
type Status string

const (
	// StatusPending - created by a representative, awaiting staff review.
	StatusPending Status = "PENDING"
	// StatusApproved - cleared by staff; may be made visible.
	StatusApproved Status = "APPROVED"
	// StatusRejected - declined by staff. Terminal.
	StatusRejected Status = "REJECTED"
)

// IsValid checks that the status is one of the known states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the posting can never change status again.
func (s Status) IsTerminal() bool {
	return s == StatusRejected
}

// String returns the symbolic name used on the wire.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a persisted status name.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", shared.NewDomainError("internship", "ParseStatus", shared.ErrInvalidFormat, "unknown internship status "+s)
	}
	return st, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: INTERNSHIP
// ══════════════════════════════════════════════════════════════════════════════

// Internship is a company-submitted opportunity record with capacity,
// eligibility, and approval state.
//
// Invariants held by the entity:
//   - 0 <= SlotsLeft <= TotalSlots
//   - Visible implies Status == APPROVED
type Internship struct {
	// ID - unique identifier, format "INT" + zero-padded sequence.
	ID string

	// Title of the posting.
	Title string

	// Description shown to students.
	Description string

	// Level - difficulty tier gating which years may apply.
	Level Level

	// PreferredMajor - free-text major label, matched via alias groups.
	PreferredMajor string

	// OpeningDate - first day applications are accepted (inclusive).
	OpeningDate shared.ISODate

	// ClosingDate - last day applications are accepted (inclusive).
	ClosingDate shared.ISODate

	// Status - approval state.
	Status Status

	// CompanyName of the posting company.
	CompanyName string

	// RepresentativeID - id of the owning company representative.
	RepresentativeID string

	// TotalSlots - total placement capacity. Always positive.
	TotalSlots int

	// SlotsLeft - remaining capacity. Consumed on acceptance.
	SlotsLeft int

	// Visible - whether students can see the posting. Only meaningful
	// while the posting is APPROVED.
	Visible bool

	// CreatedDate - date the posting was created.
	CreatedDate shared.ISODate
}

// New creates a pending, invisible internship with all slots free.
func New(id, title, description string, level Level, major string,
	opening, closing shared.ISODate, company, repID string, slots int) *Internship {
	return &Internship{
		ID:               id,
		Title:            title,
		Description:      description,
		Level:            level,
		PreferredMajor:   major,
		OpeningDate:      opening,
		ClosingDate:      closing,
		Status:           StatusPending,
		CompanyName:      company,
		RepresentativeID: repID,
		TotalSlots:       slots,
		SlotsLeft:        slots,
		Visible:          false,
		CreatedDate:      shared.Today(),
	}
}

// HasAvailableSlots reports whether at least one slot remains.
func (i *Internship) HasAvailableSlots() bool {
	return i.SlotsLeft > 0
}

// DecrementSlot consumes one slot. Calling it with zero slots left is a
// safe no-op; callers must check HasAvailableSlots beforehand if they
// need the decrement to count.
func (i *Internship) DecrementSlot() {
	if i.SlotsLeft > 0 {
		i.SlotsLeft--
	}
}

// SetTotalSlots changes the total capacity, clamping SlotsLeft down if
// the new total falls below it.
func (i *Internship) SetTotalSlots(total int) {
	i.TotalSlots = total
	if i.SlotsLeft > total {
		i.SlotsLeft = total
	}
}

// IsOwnedBy reports whether repID is the recorded owner.
func (i *Internship) IsOwnedBy(repID string) bool {
	return shared.SameID(i.RepresentativeID, repID)
}

// IsOpenOn reports whether applications are accepted on the given date.
func (i *Internship) IsOpenOn(date shared.ISODate) bool {
	return date.WithinWindow(i.OpeningDate, i.ClosingDate)
}

// AcceptsApplications reports whether students may apply at all:
// the posting must be approved and visible.
func (i *Internship) AcceptsApplications() bool {
	return i.Status == StatusApproved && i.Visible
}
