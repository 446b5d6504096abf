// Package user contains the account model for the three actor roles.
//
// Roles are a closed tagged variant rather than an inheritance tree:
// a User carries exactly one role payload and callers dispatch on Role.
// Each role's behavior in the core is simple data plus a handful of
// predicates, so polymorphism would buy nothing here.
package user

import (
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
)

// Role identifies which actor kind an account is.
type Role string

const (
	// RoleStudent - applies to internships.
	RoleStudent Role = "STUDENT"
	// RoleRepresentative - posts internships and reviews applications.
	RoleRepresentative Role = "REPRESENTATIVE"
	// RoleStaff - approves postings, accounts, and withdrawal requests.
	RoleStaff Role = "STAFF"
)

// IsValid checks that the role is one of the known kinds.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleRepresentative, RoleStaff:
		return true
	default:
		return false
	}
}

// AccountStatus tracks approval of company representative accounts.
type AccountStatus string

const (
	AccountPending  AccountStatus = "PENDING"
	AccountApproved AccountStatus = "APPROVED"
	AccountRejected AccountStatus = "REJECTED"
)

// ParseAccountStatus parses a persisted account status, defaulting
// unknown values to PENDING.
func ParseAccountStatus(s string) AccountStatus {
	switch AccountStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountApproved:
		return AccountApproved
	case AccountRejected:
		return AccountRejected
	default:
		return AccountPending
	}
}

// StudentProfile carries the student-specific payload.
type StudentProfile struct {
	// Major - free-text major label, matched via alias groups.
	Major string

	// Year of study, 1-4. Years 1-2 are restricted to BASIC postings.
	Year int
}

// RepresentativeProfile carries the company-representative payload.
type RepresentativeProfile struct {
	CompanyName string
	Department  string
	Position    string

	// AccountStatus - representatives may only log in once APPROVED.
	AccountStatus AccountStatus
}

// StaffProfile carries the career-centre-staff payload.
type StaffProfile struct {
	Department string
}

// User is one account of any role. Exactly one of the role payload
// pointers is non-nil, matching Role.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string

	Role Role

	Student        *StudentProfile
	Representative *RepresentativeProfile
	Staff          *StaffProfile
}

// IsStudent reports whether the account is a student.
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsRepresentative reports whether the account is a company representative.
func (u *User) IsRepresentative() bool { return u.Role == RoleRepresentative }

// IsStaff reports whether the account is career centre staff.
func (u *User) IsStaff() bool { return u.Role == RoleStaff }

// CanLogin reports whether the account is allowed into the system.
// Representatives must have an approved account; other roles always may.
func (u *User) CanLogin() bool {
	if u.Role != RoleRepresentative {
		return true
	}
	return u.Representative != nil && u.Representative.AccountStatus == AccountApproved
}

// NewStudent builds a student account.
func NewStudent(id, name, email, passwordHash, major string, year int) (*User, error) {
	if year < 1 || year > 4 {
		return nil, shared.NewDomainError("user", "NewStudent", shared.ErrValidation, "year of study must be between 1 and 4")
	}
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleStudent,
		Student:      &StudentProfile{Major: major, Year: year},
	}, nil
}

// NewRepresentative builds a company representative account.
func NewRepresentative(id, name, email, passwordHash, company, department, position string, status AccountStatus) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleRepresentative,
		Representative: &RepresentativeProfile{
			CompanyName:   company,
			Department:    department,
			Position:      position,
			AccountStatus: status,
		},
	}
}

// NewStaff builds a career centre staff account.
func NewStaff(id, name, email, passwordHash, department string) *User {
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleStaff,
		Staff:        &StaffProfile{Department: department},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ACTOR SNAPSHOTS
// The core operations never see credentials - they receive the already
// authenticated actor's identity and, for students, major and year.
// ══════════════════════════════════════════════════════════════════════════════

// StudentActor is the authenticated-student input to core operations.
type StudentActor struct {
	ID    string
	Name  string
	Major string
	Year  int
}

// StudentActorOf extracts the actor snapshot from a student account.
func StudentActorOf(u *User) (StudentActor, error) {
	if !u.IsStudent() || u.Student == nil {
		return StudentActor{}, shared.NewDomainError("user", "StudentActorOf", shared.ErrForbidden, "account is not a student")
	}
	return StudentActor{
		ID:    u.ID,
		Name:  u.Name,
		Major: u.Student.Major,
		Year:  u.Student.Year,
	}, nil
}
