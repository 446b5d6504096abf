// Package application contains the student application domain model
// and its status state machine.
//
// Valid status graph:
//
//	PENDING ──► SUCCESSFUL ──► ACCEPTED
//	   │             │
//	   │             └───────► WITHDRAWN        (accept-offer cascade)
//	   ├───────► UNSUCCESSFUL
//	   └───────► WITHDRAWAL_PENDING ──► WITHDRAWN
//	                      │
//	                      └───────────► PENDING (staff rejects the request)
//
// UNSUCCESSFUL, ACCEPTED and WITHDRAWN are terminal states.
package application

import (
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
)

// Status defines the review state of an application.
type Status string

const (
	// StatusPending - waiting for company representative review.
	StatusPending Status = "PENDING"
	// StatusSuccessful - approved by the representative; an offer the
	// student may accept.
	StatusSuccessful Status = "SUCCESSFUL"
	// StatusUnsuccessful - rejected by the representative. Terminal.
	StatusUnsuccessful Status = "UNSUCCESSFUL"
	// StatusAccepted - student accepted the placement. Terminal.
	StatusAccepted Status = "ACCEPTED"
	// StatusWithdrawn - withdrawn by the student or by the accept-offer
	// cascade. Terminal.
	StatusWithdrawn Status = "WITHDRAWN"
	// StatusWithdrawalPending - student requested withdrawal, awaiting
	// staff decision.
	StatusWithdrawalPending Status = "WITHDRAWAL_PENDING"
)

// validTransitions lists every allowed (from -> to) pair.
var validTransitions = map[Status][]Status{
	StatusPending:           {StatusSuccessful, StatusUnsuccessful, StatusWithdrawalPending, StatusWithdrawn},
	StatusSuccessful:        {StatusAccepted, StatusWithdrawn},
	StatusWithdrawalPending: {StatusWithdrawn, StatusPending},
	// UNSUCCESSFUL, ACCEPTED and WITHDRAWN are terminal - no outgoing transitions
}

// IsValid checks that the status is one of the known states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccessful, StatusUnsuccessful,
		StatusAccepted, StatusWithdrawn, StatusWithdrawalPending:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	_, ok := validTransitions[s]
	return !ok
}

// IsActive reports whether the application still counts against the
// student's application cap (PENDING or SUCCESSFUL).
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusSuccessful
}

// CanTransition reports whether moving from s to next is permitted by
// the state machine.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// String returns the symbolic name used on the wire.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a persisted status name.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", shared.NewDomainError("application", "ParseStatus", shared.ErrInvalidFormat, "unknown application status "+s)
	}
	return st, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: APPLICATION
// ══════════════════════════════════════════════════════════════════════════════

// Application records one student's application to one internship.
// Student name, major and year are denormalized snapshots taken at
// apply time, so later profile edits do not rewrite history.
type Application struct {
	// ID - unique identifier, format "APP" + zero-padded sequence.
	ID string

	// StudentID of the applicant.
	StudentID string

	// StudentName snapshot at apply time.
	StudentName string

	// StudentMajor snapshot at apply time.
	StudentMajor string

	// StudentYear snapshot at apply time.
	StudentYear int

	// InternshipID of the posting applied to.
	InternshipID string

	// AppliedDate - date the application was submitted.
	AppliedDate shared.ISODate

	// Status - current review state.
	Status Status
}

// New creates a pending application.
func New(id, studentID, studentName, studentMajor string, studentYear int,
	internshipID string, appliedDate shared.ISODate) *Application {
	return &Application{
		ID:           id,
		StudentID:    studentID,
		StudentName:  studentName,
		StudentMajor: studentMajor,
		StudentYear:  studentYear,
		InternshipID: internshipID,
		AppliedDate:  appliedDate,
		Status:       StatusPending,
	}
}

// BelongsTo reports whether the application was submitted by studentID.
func (a *Application) BelongsTo(studentID string) bool {
	return shared.SameID(a.StudentID, studentID)
}

// IsFor reports whether the application targets internshipID.
func (a *Application) IsFor(internshipID string) bool {
	return shared.SameID(a.InternshipID, internshipID)
}

// TransitionTo moves the application to the next status, enforcing the
// state machine. Returns shared.ErrStateTransition on an illegal move.
func (a *Application) TransitionTo(next Status) error {
	if !a.Status.CanTransition(next) {
		return shared.NewDomainError("application", "TransitionTo", shared.ErrStateTransition,
			"cannot move application from "+a.Status.String()+" to "+next.String())
	}
	a.Status = next
	return nil
}
