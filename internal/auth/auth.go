// Package auth is the authentication and account-management collaborator
// surrounding the core. The core never calls into this package - it only
// receives the already-authenticated actor's identity from the caller.
package auth

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-hub/placement-hub/internal/domain/shared"
	"github.com/campus-hub/placement-hub/internal/domain/user"
	"github.com/campus-hub/placement-hub/pkg/logger"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 4

// Directory is the account roster the authenticator works against.
// Implemented by the CSV user store.
type Directory interface {
	All(ctx context.Context) ([]*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Add(ctx context.Context, u *user.User) error
	PersistRepresentatives(ctx context.Context) error
}

// Authenticator verifies credentials and manages representative
// account registration and approval.
type Authenticator struct {
	dir Directory
	log *logger.Logger
}

// New creates an authenticator over the given directory.
func New(dir Directory, log *logger.Logger) *Authenticator {
	return &Authenticator{dir: dir, log: log}
}

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", shared.WrapError("auth", "HashPassword", shared.ErrValidation, "cannot hash password", err)
	}
	return string(bytes), nil
}

// Login resolves idOrEmail to an account and verifies the password.
// Company representatives must log in with their company email and must
// hold an APPROVED account.
func (a *Authenticator) Login(ctx context.Context, idOrEmail, password string) (*user.User, error) {
	u, err := a.dir.FindByID(ctx, idOrEmail)
	if shared.IsNotFound(err) {
		u, err = a.dir.FindByEmail(ctx, idOrEmail)
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, shared.NewDomainError("auth", "Login", shared.ErrForbidden, "incorrect password")
	}

	if u.IsRepresentative() {
		if !shared.SameID(idOrEmail, u.Email) {
			return nil, shared.NewDomainError("auth", "Login", shared.ErrForbidden, "company representatives must log in with their company email")
		}
		if !u.CanLogin() {
			return nil, shared.NewDomainError("auth", "Login", shared.ErrInvalidState, "account is "+string(u.Representative.AccountStatus))
		}
	}

	a.log.Info("login", logger.UserID(u.ID), logger.String("role", string(u.Role)))
	return u, nil
}

// ChangePassword verifies the current password and replaces it. The
// new hash lives for the session; legacy roster files carry no
// password column.
func (a *Authenticator) ChangePassword(ctx context.Context, u *user.User, oldPassword, newPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return shared.NewDomainError("auth", "ChangePassword", shared.ErrForbidden, "incorrect current password")
	}
	if len(newPassword) < minPasswordLen {
		return shared.NewDomainError("auth", "ChangePassword", shared.ErrValidation, "password too short")
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// RegisterRepresentative files a new company representative account.
// The account id is minted from a UUID and the account stays PENDING
// until staff approves it.
func (a *Authenticator) RegisterRepresentative(ctx context.Context, name, email, password, company, department, position string) (*user.User, error) {
	if name == "" || email == "" || company == "" {
		return nil, shared.NewDomainError("auth", "Register", shared.ErrEmptyValue, "name, email and company are required")
	}
	if len(password) < minPasswordLen {
		return nil, shared.NewDomainError("auth", "Register", shared.ErrValidation, "password too short")
	}
	if _, err := a.dir.FindByEmail(ctx, email); err == nil {
		return nil, shared.NewDomainError("auth", "Register", shared.ErrDuplicateEntry, "an account with this email already exists")
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := user.NewRepresentative("REP-"+uuid.New().String(), name, email, hash, company, department, position, user.AccountPending)
	if err := a.dir.Add(ctx, u); err != nil {
		return nil, err
	}
	if err := a.dir.PersistRepresentatives(ctx); err != nil {
		return nil, err
	}
	a.log.Info("representative registered", logger.UserID(u.ID))
	return u, nil
}

// ApproveRepresentative clears a pending representative account for login.
func (a *Authenticator) ApproveRepresentative(ctx context.Context, id string) error {
	return a.decideRepresentative(ctx, id, user.AccountApproved)
}

// RejectRepresentative declines a pending representative account.
func (a *Authenticator) RejectRepresentative(ctx context.Context, id string) error {
	return a.decideRepresentative(ctx, id, user.AccountRejected)
}

func (a *Authenticator) decideRepresentative(ctx context.Context, id string, decision user.AccountStatus) error {
	u, err := a.dir.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !u.IsRepresentative() || u.Representative == nil {
		return shared.NewDomainError("auth", "DecideRepresentative", shared.ErrValidation, "account is not a company representative")
	}
	if u.Representative.AccountStatus != user.AccountPending {
		return shared.NewDomainError("auth", "DecideRepresentative", shared.ErrInvalidState, "account is already "+string(u.Representative.AccountStatus))
	}
	u.Representative.AccountStatus = decision
	return a.dir.PersistRepresentatives(ctx)
}

// PendingRepresentatives lists representative accounts awaiting review.
func (a *Authenticator) PendingRepresentatives(ctx context.Context) ([]*user.User, error) {
	all, err := a.dir.All(ctx)
	if err != nil {
		return nil, err
	}
	var pending []*user.User
	for _, u := range all {
		if u.IsRepresentative() && u.Representative != nil && u.Representative.AccountStatus == user.AccountPending {
			pending = append(pending, u)
		}
	}
	return pending, nil
}
