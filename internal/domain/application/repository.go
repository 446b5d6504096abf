package application

import "context"

// Repository defines the contract for the application record store.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// All returns the full ordered collection.
	All(ctx context.Context) ([]*Application, error)

	// FindByID returns the application with the given id.
	// Returns shared.ErrNotFound if no such application exists.
	FindByID(ctx context.Context, id string) (*Application, error)

	// ByStudent returns all applications submitted by studentID.
	ByStudent(ctx context.Context, studentID string) ([]*Application, error)

	// ByInternship returns all applications targeting internshipID.
	ByInternship(ctx context.Context, internshipID string) ([]*Application, error)

	// Add appends a new application to the collection. Does not persist.
	Add(ctx context.Context, a *Application) error

	// Persist rewrites the whole backing collection.
	// A failure here wraps shared.ErrStorage and is fatal to the session.
	Persist(ctx context.Context) error
}
