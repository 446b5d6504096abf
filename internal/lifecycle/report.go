package lifecycle

import (
	"context"

	"github.com/campus-hub/placement-hub/internal/domain/eligibility"
	"github.com/campus-hub/placement-hub/internal/domain/internship"
)

// ReportFilter narrows the staff creation report. Nil/empty fields mean
// "any".
type ReportFilter struct {
	Status *internship.Status
	Major  string
	Level  *internship.Level
}

// Report is the staff-facing tabulation of postings plus summary
// counts. The manager returns data; rendering belongs to the caller.
type Report struct {
	Rows     []*internship.Internship
	Total    int
	Approved int
	Pending  int
	Rejected int
}

// Report builds the internship creation report for staff.
func (m *InternshipManager) Report(ctx context.Context, filter ReportFilter) (*Report, error) {
	all, err := m.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{}
	for _, i := range all {
		if filter.Status != nil && i.Status != *filter.Status {
			continue
		}
		if filter.Major != "" && !eligibility.MajorsMatch(i.PreferredMajor, filter.Major) {
			continue
		}
		if filter.Level != nil && i.Level != *filter.Level {
			continue
		}
		r.Rows = append(r.Rows, i)
		switch i.Status {
		case internship.StatusApproved:
			r.Approved++
		case internship.StatusPending:
			r.Pending++
		case internship.StatusRejected:
			r.Rejected++
		}
	}
	r.Total = len(r.Rows)
	return r, nil
}
