package lifecycle

import (
	"context"
	"io"
	"testing"

	app "github.com/campus-hub/placement-hub/internal/domain/application"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/pkg/logger"
)

// testToday is the fixed date injected into every manager under test.
const testToday = shared.ISODate("2026-03-15")

type memInternships struct {
	items    []*internship.Internship
	persists int
}

func (m *memInternships) All(ctx context.Context) ([]*internship.Internship, error) {
	return m.items, nil
}

func (m *memInternships) FindByID(ctx context.Context, id string) (*internship.Internship, error) {
	for _, i := range m.items {
		if shared.SameID(i.ID, id) {
			return i, nil
		}
	}
	return nil, shared.NewDomainError("internship", "FindByID", shared.ErrNotFound, "no internship with id "+id)
}

func (m *memInternships) Add(ctx context.Context, i *internship.Internship) error {
	m.items = append(m.items, i)
	return nil
}

func (m *memInternships) Persist(ctx context.Context) error {
	m.persists++
	return nil
}

type memApplications struct {
	items    []*app.Application
	persists int
}

func (m *memApplications) All(ctx context.Context) ([]*app.Application, error) {
	return m.items, nil
}

func (m *memApplications) FindByID(ctx context.Context, id string) (*app.Application, error) {
	for _, a := range m.items {
		if shared.SameID(a.ID, id) {
			return a, nil
		}
	}
	return nil, shared.NewDomainError("application", "FindByID", shared.ErrNotFound, "no application with id "+id)
}

func (m *memApplications) ByStudent(ctx context.Context, studentID string) ([]*app.Application, error) {
	var result []*app.Application
	for _, a := range m.items {
		if a.BelongsTo(studentID) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *memApplications) ByInternship(ctx context.Context, internshipID string) ([]*app.Application, error) {
	var result []*app.Application
	for _, a := range m.items {
		if a.IsFor(internshipID) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *memApplications) Add(ctx context.Context, a *app.Application) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memApplications) Persist(ctx context.Context) error {
	m.persists++
	return nil
}

// newManagers wires both managers over in-memory stores with a fixed
// clock and a silent logger.
func newManagers(t *testing.T, postings *memInternships, apps *memApplications) (*InternshipManager, *ApplicationManager) {
	t.Helper()
	log := logger.New(io.Discard, logger.LevelError)
	ctx := context.Background()

	im, err := NewInternshipManager(ctx, postings, log, 0)
	if err != nil {
		t.Fatalf("NewInternshipManager: %v", err)
	}
	am, err := NewApplicationManager(ctx, apps, im, log, 0)
	if err != nil {
		t.Fatalf("NewApplicationManager: %v", err)
	}
	am.WithClock(func() shared.ISODate { return testToday })
	return im, am
}

// openPosting returns an approved, visible posting whose window contains
// testToday.
func openPosting(id string, slots int) *internship.Internship {
	i := internship.New(id, "Backend Intern", "Build services", internship.LevelBasic, "CSC",
		"2026-03-01", "2026-03-31", "Acme", "REP-1", slots)
	i.Status = internship.StatusApproved
	i.Visible = true
	return i
}
