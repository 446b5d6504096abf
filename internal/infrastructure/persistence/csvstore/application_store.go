package csvstore

import (
	"context"
	"strconv"

	app "github.com/campus-hub/placement-hub/internal/domain/application"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/pkg/logger"
)

// applicationHeader defines the on-disk column order.
var applicationHeader = []string{
	"appId", "studentId", "studentName", "studentMajor", "studentYear",
	"internshipId", "appliedDate", "status",
}

// ApplicationStore implements application.Repository over one CSV file.
type ApplicationStore struct {
	path  string
	log   *logger.Logger
	items []*app.Application
}

// OpenApplicationStore loads the collection from path. A missing file
// yields an empty store.
func OpenApplicationStore(path string, log *logger.Logger) (*ApplicationStore, error) {
	s := &ApplicationStore{path: path, log: log}
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if isHeader(row, applicationHeader) {
			continue
		}
		a, err := parseApplicationRow(row)
		if err != nil {
			log.Warn("skipping invalid application row", logger.Err(err))
			continue
		}
		s.items = append(s.items, a)
	}
	log.Info("applications loaded", logger.Int("count", len(s.items)))
	return s, nil
}

func parseApplicationRow(row []string) (*app.Application, error) {
	if len(row) < 8 {
		return nil, shared.NewDomainError("csvstore", "ParseApplication", shared.ErrInvalidFormat, "expected 8 columns")
	}
	year, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, shared.WrapError("csvstore", "ParseApplication", shared.ErrInvalidFormat, "bad studentYear", err)
	}
	applied, err := shared.NewISODate(row[6])
	if err != nil {
		return nil, err
	}
	status, err := app.ParseStatus(row[7])
	if err != nil {
		return nil, err
	}
	return &app.Application{
		ID:           row[0],
		StudentID:    row[1],
		StudentName:  row[2],
		StudentMajor: row[3],
		StudentYear:  year,
		InternshipID: row[5],
		AppliedDate:  applied,
		Status:       status,
	}, nil
}

// All returns the full ordered collection.
func (s *ApplicationStore) All(ctx context.Context) ([]*app.Application, error) {
	return s.items, nil
}

// FindByID returns the application with the given id (case-insensitive).
func (s *ApplicationStore) FindByID(ctx context.Context, id string) (*app.Application, error) {
	for _, a := range s.items {
		if shared.SameID(a.ID, id) {
			return a, nil
		}
	}
	return nil, shared.NewDomainError("application", "FindByID", shared.ErrNotFound, "application "+id+" not found")
}

// ByStudent returns all applications submitted by studentID.
func (s *ApplicationStore) ByStudent(ctx context.Context, studentID string) ([]*app.Application, error) {
	var result []*app.Application
	for _, a := range s.items {
		if a.BelongsTo(studentID) {
			result = append(result, a)
		}
	}
	return result, nil
}

// ByInternship returns all applications targeting internshipID.
func (s *ApplicationStore) ByInternship(ctx context.Context, internshipID string) ([]*app.Application, error) {
	var result []*app.Application
	for _, a := range s.items {
		if a.IsFor(internshipID) {
			result = append(result, a)
		}
	}
	return result, nil
}

// Add appends an application to the collection without persisting.
func (s *ApplicationStore) Add(ctx context.Context, a *app.Application) error {
	s.items = append(s.items, a)
	return nil
}

// Persist rewrites the whole backing file atomically.
func (s *ApplicationStore) Persist(ctx context.Context) error {
	rows := make([][]string, 0, len(s.items))
	for _, a := range s.items {
		rows = append(rows, []string{
			a.ID, a.StudentID, a.StudentName, a.StudentMajor,
			strconv.Itoa(a.StudentYear), a.InternshipID,
			a.AppliedDate.String(), a.Status.String(),
		})
	}
	return writeAtomic(s.path, applicationHeader, rows)
}
