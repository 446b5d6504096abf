package csvstore

import (
	"context"
	"strconv"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
	"github.com/campus-hub/placement-hub/pkg/logger"
)

// On-disk column orders for the three account files. The legacy record
// files carry no password column; every loaded account starts with the
// programme's default password hash.
var (
	studentHeader = []string{"id", "name", "major", "year", "email"}
	repHeader     = []string{"id", "name", "company", "department", "position", "email", "status"}
	staffHeader   = []string{"id", "name", "role", "department", "email"}
)

// UserStore holds every account of all three roles. Representative
// registrations and account-status decisions are persisted back to the
// representative file; student and staff files are read-only rosters.
type UserStore struct {
	studentPath string
	repPath     string
	staffPath   string
	log         *logger.Logger
	users       []*user.User
}

// OpenUserStore loads the three account rosters. defaultHash is the
// bcrypt hash assigned to accounts loaded from the legacy files.
func OpenUserStore(studentPath, repPath, staffPath, defaultHash string, log *logger.Logger) (*UserStore, error) {
	s := &UserStore{studentPath: studentPath, repPath: repPath, staffPath: staffPath, log: log}

	if err := s.loadStudents(defaultHash); err != nil {
		return nil, err
	}
	if err := s.loadRepresentatives(defaultHash); err != nil {
		return nil, err
	}
	if err := s.loadStaff(defaultHash); err != nil {
		return nil, err
	}
	log.Info("users loaded", logger.Int("count", len(s.users)))
	return s, nil
}

func (s *UserStore) loadStudents(defaultHash string) error {
	rows, err := readAll(s.studentPath)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if isHeader(row, studentHeader) {
			continue
		}
		if len(row) < 5 {
			s.log.Warn("skipping invalid student row")
			continue
		}
		year, err := strconv.Atoi(row[3])
		if err != nil {
			s.log.Warn("skipping student row with bad year", logger.Err(err))
			continue
		}
		u, err := user.NewStudent(row[0], row[1], row[4], defaultHash, row[2], year)
		if err != nil {
			s.log.Warn("skipping invalid student row", logger.Err(err))
			continue
		}
		s.users = append(s.users, u)
	}
	return nil
}

func (s *UserStore) loadRepresentatives(defaultHash string) error {
	rows, err := readAll(s.repPath)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if isHeader(row, repHeader) {
			continue
		}
		if len(row) < 7 {
			s.log.Warn("skipping invalid representative row")
			continue
		}
		s.users = append(s.users, user.NewRepresentative(
			row[0], row[1], row[5], defaultHash,
			row[2], row[3], row[4], user.ParseAccountStatus(row[6]),
		))
	}
	return nil
}

func (s *UserStore) loadStaff(defaultHash string) error {
	rows, err := readAll(s.staffPath)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if isHeader(row, staffHeader) {
			continue
		}
		if len(row) < 5 {
			s.log.Warn("skipping invalid staff row")
			continue
		}
		s.users = append(s.users, user.NewStaff(row[0], row[1], row[4], defaultHash, row[3]))
	}
	return nil
}

// All returns every loaded account.
func (s *UserStore) All(ctx context.Context) ([]*user.User, error) {
	return s.users, nil
}

// FindByID returns the account with the given id (case-insensitive).
func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range s.users {
		if shared.SameID(u.ID, id) {
			return u, nil
		}
	}
	return nil, shared.NewDomainError("user", "FindByID", shared.ErrNotFound, "user "+id+" not found")
}

// FindByEmail returns the account with the given email (case-insensitive).
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range s.users {
		if shared.SameID(u.Email, email) {
			return u, nil
		}
	}
	return nil, shared.NewDomainError("user", "FindByEmail", shared.ErrNotFound, "no account for "+email)
}

// Add appends a new account to the roster without persisting.
func (s *UserStore) Add(ctx context.Context, u *user.User) error {
	s.users = append(s.users, u)
	return nil
}

// PersistRepresentatives rewrites the representative roster, carrying
// registrations and account-status decisions to disk.
func (s *UserStore) PersistRepresentatives(ctx context.Context) error {
	var rows [][]string
	for _, u := range s.users {
		if !u.IsRepresentative() || u.Representative == nil {
			continue
		}
		r := u.Representative
		rows = append(rows, []string{
			u.ID, u.Name, r.CompanyName, r.Department, r.Position, u.Email, string(r.AccountStatus),
		})
	}
	return writeAtomic(s.repPath, repHeader, rows)
}
