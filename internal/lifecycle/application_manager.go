package lifecycle

import (
	"context"

	app "github.com/campus-hub/placement-hub/internal/domain/application"
	"github.com/campus-hub/placement-hub/internal/domain/eligibility"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
	"github.com/campus-hub/placement-hub/pkg/logger"
	"github.com/campus-hub/placement-hub/pkg/sequence"
)

// DefaultMaxActiveApplications caps how many applications a student may
// hold in non-terminal (PENDING/SUCCESSFUL) states simultaneously.
const DefaultMaxActiveApplications = 3

// applicationIDWidth is the zero-padding of minted application ids (APP001).
const applicationIDWidth = 3

// ApplicationManager owns the application lifecycle: apply, review,
// accept-offer, and the withdrawal request flow. Slot consumption is
// coordinated with the internship lifecycle manager.
type ApplicationManager struct {
	repo        app.Repository
	internships *InternshipManager
	ids         *sequence.Sequence
	log         *logger.Logger
	maxActive   int

	// today is injected so that date-window rules are testable.
	today func() shared.ISODate
}

// NewApplicationManager builds a manager over the given store. The id
// sequence is seeded once from the loaded collection's maximum suffix.
func NewApplicationManager(ctx context.Context, repo app.Repository, internships *InternshipManager, log *logger.Logger, maxActive int) (*ApplicationManager, error) {
	if maxActive <= 0 {
		maxActive = DefaultMaxActiveApplications
	}
	all, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := sequence.New("APP", applicationIDWidth)
	for _, a := range all {
		ids.Observe(a.ID)
	}
	return &ApplicationManager{
		repo:        repo,
		internships: internships,
		ids:         ids,
		log:         log,
		maxActive:   maxActive,
		today:       shared.Today,
	}, nil
}

// WithClock overrides the manager's notion of "today". Test hook.
func (m *ApplicationManager) WithClock(today func() shared.ISODate) *ApplicationManager {
	m.today = today
	return m
}

// Apply submits a student application for a posting. The rules are
// evaluated in a fixed order and the first violation wins; each rule
// maps to a distinct error kind so the caller can report precisely.
func (m *ApplicationManager) Apply(ctx context.Context, student user.StudentActor, internshipID string) (*app.Application, error) {
	// 1. The posting must exist.
	posting, err := m.internships.FindByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	mine, err := m.repo.ByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	// 2. A student with an accepted offer is locked out of further applications.
	for _, a := range mine {
		if a.Status == app.StatusAccepted {
			return nil, shared.NewDomainError("application", "Apply", shared.ErrInvalidState, "an accepted offer locks out further applications")
		}
	}

	// 3. The posting must be visible and approved.
	if !posting.AcceptsApplications() {
		return nil, shared.NewDomainError("application", "Apply", shared.ErrInvalidState, "internship is not open for applications")
	}

	// 4. At most maxActive non-terminal applications at a time.
	active := 0
	for _, a := range mine {
		if a.Status.IsActive() {
			active++
		}
	}
	if active >= m.maxActive {
		return nil, shared.NewDomainError("application", "Apply", shared.ErrCapacityExceeded, "active application limit reached; withdraw one before applying again")
	}

	// 5. Today must fall inside the posting's date window, both ends inclusive.
	if !posting.IsOpenOn(m.today()) {
		return nil, shared.NewDomainError("application", "Apply", shared.ErrDateWindowViolation, "the application period is not open")
	}

	// 6. The student's major must be compatible with the preferred major.
	if !eligibility.MajorsMatch(student.Major, posting.PreferredMajor) {
		return nil, shared.NewDomainError("application", "Apply", shared.ErrEligibility, "internship is restricted to "+posting.PreferredMajor+" majors")
	}

	// 7. The student's year of study must be eligible for the level.
	if !eligibility.LevelAllowed(student.Year, posting.Level) {
		return nil, shared.NewDomainError("application", "Apply", shared.ErrEligibility, "not eligible for this internship level")
	}

	// 8. At least one slot must remain.
	if !posting.HasAvailableSlots() {
		return nil, shared.NewDomainError("application", "Apply", shared.ErrCapacityExceeded, "no remaining slots")
	}

	// 9. One application per (student, internship) pair, ever.
	for _, a := range mine {
		if a.IsFor(internshipID) {
			return nil, shared.NewDomainError("application", "Apply", shared.ErrDuplicateEntry, "already applied for this internship")
		}
	}

	created := app.New(m.ids.Next(), student.ID, student.Name, student.Major, student.Year, internshipID, m.today())
	if err := m.repo.Add(ctx, created); err != nil {
		return nil, err
	}
	if err := m.repo.Persist(ctx); err != nil {
		return nil, err
	}
	m.log.Info("application submitted", logger.ApplicationID(created.ID), logger.InternshipID(internshipID), logger.UserID(student.ID))
	return created, nil
}

// ApproveApplication marks an application SUCCESSFUL and consumes one
// slot. Capacity is re-checked at decision time: slots may have been
// consumed since the application came in.
func (m *ApplicationManager) ApproveApplication(ctx context.Context, appID string) error {
	a, err := m.repo.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	posting, err := m.internships.FindByID(ctx, a.InternshipID)
	if err != nil {
		return err
	}
	if !posting.HasAvailableSlots() {
		return shared.NewDomainError("application", "Approve", shared.ErrCapacityExceeded, "internship '"+posting.Title+"' is full")
	}
	if err := a.TransitionTo(app.StatusSuccessful); err != nil {
		return err
	}
	if err := m.internships.DecrementSlot(ctx, posting.ID); err != nil {
		return err
	}
	if err := m.repo.Persist(ctx); err != nil {
		return err
	}
	m.log.Info("application approved", logger.ApplicationID(appID), logger.InternshipID(posting.ID))
	return nil
}

// RejectApplication marks an application UNSUCCESSFUL (terminal).
func (m *ApplicationManager) RejectApplication(ctx context.Context, appID string) error {
	a, err := m.repo.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	if err := a.TransitionTo(app.StatusUnsuccessful); err != nil {
		return err
	}
	return m.repo.Persist(ctx)
}

// AcceptOffer lets the student accept a SUCCESSFUL offer. The accepted
// application becomes ACCEPTED and consumes a slot; every other
// application by the same student still in PENDING or SUCCESSFUL state
// is cascaded to WITHDRAWN.
func (m *ApplicationManager) AcceptOffer(ctx context.Context, studentID, appID string) error {
	selected, err := m.repo.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	if !selected.BelongsTo(studentID) {
		return shared.NewDomainError("application", "AcceptOffer", shared.ErrForbidden, "application belongs to another student")
	}
	if err := selected.TransitionTo(app.StatusAccepted); err != nil {
		return err
	}

	if err := m.internships.DecrementSlot(ctx, selected.InternshipID); err != nil {
		return err
	}

	mine, err := m.repo.ByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	for _, other := range mine {
		if other.ID == selected.ID || !other.Status.IsActive() {
			continue
		}
		if err := other.TransitionTo(app.StatusWithdrawn); err != nil {
			return err
		}
	}

	if err := m.repo.Persist(ctx); err != nil {
		return err
	}
	m.log.Info("offer accepted", logger.ApplicationID(appID), logger.UserID(studentID))
	return nil
}

// Withdraw files a withdrawal request for a PENDING application. The
// application moves to WITHDRAWAL_PENDING and waits for a staff
// decision; it is not withdrawn immediately.
func (m *ApplicationManager) Withdraw(ctx context.Context, studentID, appID string) error {
	a, err := m.repo.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	if !a.BelongsTo(studentID) {
		return shared.NewDomainError("application", "Withdraw", shared.ErrForbidden, "application belongs to another student")
	}
	posting, err := m.internships.FindByID(ctx, a.InternshipID)
	if err != nil {
		return err
	}
	if posting.Status != internship.StatusApproved {
		return shared.NewDomainError("application", "Withdraw", shared.ErrInvalidState, "withdrawals apply to approved internships only")
	}
	if a.Status != app.StatusPending {
		return shared.NewDomainError("application", "Withdraw", shared.ErrInvalidState, "only pending applications can be withdrawn")
	}
	if err := a.TransitionTo(app.StatusWithdrawalPending); err != nil {
		return err
	}
	return m.repo.Persist(ctx)
}

// ApproveWithdrawal finalizes a withdrawal request. Staff-only by
// convention of the calling layer.
func (m *ApplicationManager) ApproveWithdrawal(ctx context.Context, appID string) error {
	return m.decideWithdrawal(ctx, appID, app.StatusWithdrawn)
}

// RejectWithdrawal declines a withdrawal request; the application
// returns to PENDING.
func (m *ApplicationManager) RejectWithdrawal(ctx context.Context, appID string) error {
	return m.decideWithdrawal(ctx, appID, app.StatusPending)
}

func (m *ApplicationManager) decideWithdrawal(ctx context.Context, appID string, outcome app.Status) error {
	a, err := m.repo.FindByID(ctx, appID)
	if err != nil {
		return err
	}
	if a.Status != app.StatusWithdrawalPending {
		return shared.NewDomainError("application", "DecideWithdrawal", shared.ErrInvalidState, "application has no pending withdrawal request")
	}
	if err := a.TransitionTo(outcome); err != nil {
		return err
	}
	return m.repo.Persist(ctx)
}

// ══════════════════════════════════════════════════════════════════════════════
// QUERY HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// ByStudent returns the student's applications.
func (m *ApplicationManager) ByStudent(ctx context.Context, studentID string) ([]*app.Application, error) {
	return m.repo.ByStudent(ctx, studentID)
}

// ByInternship returns applications for one posting.
func (m *ApplicationManager) ByInternship(ctx context.Context, internshipID string) ([]*app.Application, error) {
	return m.repo.ByInternship(ctx, internshipID)
}

// ForRepresentative returns every application targeting a posting owned
// by the representative.
func (m *ApplicationManager) ForRepresentative(ctx context.Context, repID string) ([]*app.Application, error) {
	return m.forRepresentative(ctx, repID, false)
}

// PendingForRepresentative returns only the PENDING subset awaiting the
// representative's review.
func (m *ApplicationManager) PendingForRepresentative(ctx context.Context, repID string) ([]*app.Application, error) {
	return m.forRepresentative(ctx, repID, true)
}

func (m *ApplicationManager) forRepresentative(ctx context.Context, repID string, pendingOnly bool) ([]*app.Application, error) {
	owned, err := m.internships.ByRepresentative(ctx, repID)
	if err != nil {
		return nil, err
	}
	var result []*app.Application
	for _, posting := range owned {
		apps, err := m.repo.ByInternship(ctx, posting.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range apps {
			if pendingOnly && a.Status != app.StatusPending {
				continue
			}
			result = append(result, a)
		}
	}
	return result, nil
}

// PendingWithdrawals returns every withdrawal request awaiting staff.
func (m *ApplicationManager) PendingWithdrawals(ctx context.Context) ([]*app.Application, error) {
	all, err := m.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	var result []*app.Application
	for _, a := range all {
		if a.Status == app.StatusWithdrawalPending {
			result = append(result, a)
		}
	}
	return result, nil
}

// Withdrawable returns the student's applications eligible for a
// withdrawal request (PENDING only).
func (m *ApplicationManager) Withdrawable(ctx context.Context, studentID string) ([]*app.Application, error) {
	mine, err := m.repo.ByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	var result []*app.Application
	for _, a := range mine {
		if a.Status == app.StatusPending {
			result = append(result, a)
		}
	}
	return result, nil
}

// HasSuccessfulOffer reports whether the student holds an offer waiting
// to be accepted.
func (m *ApplicationManager) HasSuccessfulOffer(ctx context.Context, studentID string) (bool, error) {
	mine, err := m.repo.ByStudent(ctx, studentID)
	if err != nil {
		return false, err
	}
	for _, a := range mine {
		if a.Status == app.StatusSuccessful {
			return true, nil
		}
	}
	return false, nil
}
