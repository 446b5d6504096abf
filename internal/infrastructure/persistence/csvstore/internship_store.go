package csvstore

import (
	"context"
	"strconv"

	"github.com/campus-hub/placement-hub/internal/domain/internship"
	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/pkg/logger"
)

// internshipHeader defines the on-disk column order.
var internshipHeader = []string{
	"id", "title", "description", "level", "major",
	"openDate", "closeDate", "status", "company", "repId",
	"totalSlots", "slotsLeft", "visible", "createdDate",
}

// InternshipStore implements internship.Repository over one CSV file.
// The collection is held in memory; Persist rewrites the whole file.
type InternshipStore struct {
	path  string
	log   *logger.Logger
	items []*internship.Internship
}

// OpenInternshipStore loads the collection from path. A missing file
// yields an empty store.
func OpenInternshipStore(path string, log *logger.Logger) (*InternshipStore, error) {
	s := &InternshipStore{path: path, log: log}
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if isHeader(row, internshipHeader) {
			continue
		}
		i, err := parseInternshipRow(row)
		if err != nil {
			log.Warn("skipping invalid internship row", logger.Err(err))
			continue
		}
		s.items = append(s.items, i)
	}
	log.Info("internships loaded", logger.Int("count", len(s.items)))
	return s, nil
}

func parseInternshipRow(row []string) (*internship.Internship, error) {
	if len(row) < 13 {
		return nil, shared.NewDomainError("csvstore", "ParseInternship", shared.ErrInvalidFormat, "expected at least 13 columns")
	}
	status, err := internship.ParseStatus(row[7])
	if err != nil {
		return nil, err
	}
	opening, err := shared.NewISODate(row[5])
	if err != nil {
		return nil, err
	}
	closing, err := shared.NewISODate(row[6])
	if err != nil {
		return nil, err
	}
	total, err := strconv.Atoi(row[10])
	if err != nil {
		return nil, shared.WrapError("csvstore", "ParseInternship", shared.ErrInvalidFormat, "bad totalSlots", err)
	}
	left, err := strconv.Atoi(row[11])
	if err != nil {
		return nil, shared.WrapError("csvstore", "ParseInternship", shared.ErrInvalidFormat, "bad slotsLeft", err)
	}
	visible, err := strconv.ParseBool(row[12])
	if err != nil {
		return nil, shared.WrapError("csvstore", "ParseInternship", shared.ErrInvalidFormat, "bad visible flag", err)
	}

	i := &internship.Internship{
		ID:               row[0],
		Title:            row[1],
		Description:      row[2],
		Level:            internship.ParseLevel(row[3]), // unknown level falls back to BASIC
		PreferredMajor:   row[4],
		OpeningDate:      opening,
		ClosingDate:      closing,
		Status:           status,
		CompanyName:      row[8],
		RepresentativeID: row[9],
		TotalSlots:       total,
		SlotsLeft:        left,
		Visible:          visible,
	}
	if len(row) > 13 && row[13] != "" {
		if created, err := shared.NewISODate(row[13]); err == nil {
			i.CreatedDate = created
		}
	}
	return i, nil
}

// All returns the full ordered collection.
func (s *InternshipStore) All(ctx context.Context) ([]*internship.Internship, error) {
	return s.items, nil
}

// FindByID returns the posting with the given id (case-insensitive).
func (s *InternshipStore) FindByID(ctx context.Context, id string) (*internship.Internship, error) {
	for _, i := range s.items {
		if shared.SameID(i.ID, id) {
			return i, nil
		}
	}
	return nil, shared.NewDomainError("internship", "FindByID", shared.ErrNotFound, "internship "+id+" not found")
}

// Add appends a posting to the collection without persisting.
func (s *InternshipStore) Add(ctx context.Context, i *internship.Internship) error {
	s.items = append(s.items, i)
	return nil
}

// Persist rewrites the whole backing file atomically.
func (s *InternshipStore) Persist(ctx context.Context) error {
	rows := make([][]string, 0, len(s.items))
	for _, i := range s.items {
		rows = append(rows, []string{
			i.ID, i.Title, i.Description, i.Level.String(), i.PreferredMajor,
			i.OpeningDate.String(), i.ClosingDate.String(), i.Status.String(),
			i.CompanyName, i.RepresentativeID,
			strconv.Itoa(i.TotalSlots), strconv.Itoa(i.SlotsLeft),
			strconv.FormatBool(i.Visible), i.CreatedDate.String(),
		})
	}
	return writeAtomic(s.path, internshipHeader, rows)
}
