// Package lifecycle contains the two managers owning all valid state
// transitions for internships and applications. Every mutation is
// checked against the eligibility rules first and persisted through the
// record store immediately after.
package lifecycle

import (
	"context"
	"strings"

	"github.com/campus-hub/placement-hub/internal/domain/eligibility"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/pkg/logger"
	"github.com/campus-hub/placement-hub/pkg/sequence"
)

// DefaultMaxPostingsPerRep caps how many non-terminal postings one
// representative may hold at a time.
const DefaultMaxPostingsPerRep = 5

// internshipIDWidth is the zero-padding of minted internship ids (INT001).
const internshipIDWidth = 3

// InternshipManager owns the internship posting lifecycle:
// creation, edits, staff review, visibility, and slot accounting.
type InternshipManager struct {
	repo      internship.Repository
	ids       *sequence.Sequence
	log       *logger.Logger
	maxPerRep int
}

// NewInternshipManager builds a manager over the given store. The id
// sequence is seeded once from the loaded collection's maximum suffix.
func NewInternshipManager(ctx context.Context, repo internship.Repository, log *logger.Logger, maxPerRep int) (*InternshipManager, error) {
	if maxPerRep <= 0 {
		maxPerRep = DefaultMaxPostingsPerRep
	}
	all, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := sequence.New("INT", internshipIDWidth)
	for _, i := range all {
		ids.Observe(i.ID)
	}
	return &InternshipManager{repo: repo, ids: ids, log: log, maxPerRep: maxPerRep}, nil
}

// PostingDraft carries the mutable fields of a posting, used both for
// creation and for edits while the posting is still PENDING.
type PostingDraft struct {
	Title       string
	Description string
	Level       internship.Level
	Major       string
	OpeningDate string
	ClosingDate string
	Slots       int
}

// validate checks the draft fields and returns the parsed date window.
func (d PostingDraft) validate() (open, close shared.ISODate, err error) {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Description) == "" {
		return "", "", shared.NewDomainError("internship", "Validate", shared.ErrEmptyValue, "title and description cannot be empty")
	}
	if d.Slots <= 0 {
		return "", "", shared.NewDomainError("internship", "Validate", shared.ErrValidation, "number of slots must be positive")
	}
	open, err = shared.NewISODate(d.OpeningDate)
	if err != nil {
		return "", "", err
	}
	close, err = shared.NewISODate(d.ClosingDate)
	if err != nil {
		return "", "", err
	}
	if close.Before(open) {
		return "", "", shared.NewDomainError("internship", "Validate", shared.ErrValidation, "closing date cannot precede opening date")
	}
	return open, close, nil
}

// Create registers a new posting for the representative. The result is
// PENDING and invisible until staff approval, and is persisted
// immediately.
func (m *InternshipManager) Create(ctx context.Context, repID, company string, draft PostingDraft) (*internship.Internship, error) {
	active, err := m.countActivePostings(ctx, repID)
	if err != nil {
		return nil, err
	}
	if active >= m.maxPerRep {
		return nil, shared.NewDomainError("internship", "Create", shared.ErrCapacityExceeded, "representative posting limit reached")
	}

	open, close, err := draft.validate()
	if err != nil {
		return nil, err
	}

	i := internship.New(m.ids.Next(), strings.TrimSpace(draft.Title), strings.TrimSpace(draft.Description),
		draft.Level, draft.Major, open, close, company, repID, draft.Slots)

	if err := m.repo.Add(ctx, i); err != nil {
		return nil, err
	}
	if err := m.repo.Persist(ctx); err != nil {
		return nil, err
	}
	m.log.Info("internship created", logger.InternshipID(i.ID), logger.UserID(repID))
	return i, nil
}

// Edit replaces the mutable fields of a posting. Only the owner may
// edit, and only while the posting is still PENDING. If the total slot
// count shrinks below the remaining count, the remainder is clamped.
func (m *InternshipManager) Edit(ctx context.Context, id, repID string, draft PostingDraft) error {
	i, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !eligibility.CanManage(repID, i) {
		return shared.NewDomainError("internship", "Edit", shared.ErrForbidden, "only the owning representative may edit a posting")
	}
	if i.Status != internship.StatusPending {
		return shared.NewDomainError("internship", "Edit", shared.ErrInvalidState, "posting has already been "+i.Status.String())
	}

	open, close, err := draft.validate()
	if err != nil {
		return err
	}

	i.Title = strings.TrimSpace(draft.Title)
	i.Description = strings.TrimSpace(draft.Description)
	i.Level = draft.Level
	i.PreferredMajor = draft.Major
	i.OpeningDate = open
	i.ClosingDate = close
	i.SetTotalSlots(draft.Slots)

	if err := m.repo.Persist(ctx); err != nil {
		return err
	}
	m.log.Info("internship edited", logger.InternshipID(i.ID))
	return nil
}

// Approve transitions a PENDING posting to APPROVED. Staff-only by
// convention of the calling layer. Approving a posting that is not
// PENDING is an error, not a re-transition.
func (m *InternshipManager) Approve(ctx context.Context, id string) error {
	return m.review(ctx, id, internship.StatusApproved)
}

// Reject transitions a PENDING posting to REJECTED (terminal).
func (m *InternshipManager) Reject(ctx context.Context, id string) error {
	return m.review(ctx, id, internship.StatusRejected)
}

func (m *InternshipManager) review(ctx context.Context, id string, decision internship.Status) error {
	i, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if i.Status != internship.StatusPending {
		return shared.NewDomainError("internship", "Review", shared.ErrInvalidState, "posting has already been "+i.Status.String())
	}
	i.Status = decision
	if err := m.repo.Persist(ctx); err != nil {
		return err
	}
	m.log.Info("internship reviewed", logger.InternshipID(id), logger.String("decision", decision.String()))
	return nil
}

// ToggleVisibility turns a posting's student visibility on or off.
// Only the owner may toggle, and a posting can only be made visible
// while APPROVED.
func (m *InternshipManager) ToggleVisibility(ctx context.Context, id, repID string, visible bool) error {
	i, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !eligibility.CanManage(repID, i) {
		return shared.NewDomainError("internship", "ToggleVisibility", shared.ErrForbidden, "only the owning representative may toggle visibility")
	}
	if visible && i.Status != internship.StatusApproved {
		return shared.NewDomainError("internship", "ToggleVisibility", shared.ErrInvalidState, "only approved postings can be made visible")
	}
	i.Visible = visible
	return m.repo.Persist(ctx)
}

// DecrementSlot consumes one slot on the posting and persists. Used
// only by the application lifecycle manager; decrementing at zero is a
// safe no-op, so callers must check HasAvailableSlots when the
// decrement has to count.
func (m *InternshipManager) DecrementSlot(ctx context.Context, id string) error {
	i, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	i.DecrementSlot()
	return m.repo.Persist(ctx)
}

// FindByID returns the posting with the given id.
func (m *InternshipManager) FindByID(ctx context.Context, id string) (*internship.Internship, error) {
	return m.repo.FindByID(ctx, id)
}

// All returns the full posting collection.
func (m *InternshipManager) All(ctx context.Context) ([]*internship.Internship, error) {
	return m.repo.All(ctx)
}

// Pending returns postings awaiting staff review.
func (m *InternshipManager) Pending(ctx context.Context) ([]*internship.Internship, error) {
	all, err := m.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	var pending []*internship.Internship
	for _, i := range all {
		if i.Status == internship.StatusPending {
			pending = append(pending, i)
		}
	}
	return pending, nil
}

// ByRepresentative returns postings owned by the representative.
func (m *InternshipManager) ByRepresentative(ctx context.Context, repID string) ([]*internship.Internship, error) {
	all, err := m.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	var owned []*internship.Internship
	for _, i := range all {
		if i.IsOwnedBy(repID) {
			owned = append(owned, i)
		}
	}
	return owned, nil
}

// countActivePostings counts the representative's non-terminal postings.
func (m *InternshipManager) countActivePostings(ctx context.Context, repID string) (int, error) {
	all, err := m.repo.All(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, i := range all {
		if i.IsOwnedBy(repID) && !i.Status.IsTerminal() {
			count++
		}
	}
	return count, nil
}
