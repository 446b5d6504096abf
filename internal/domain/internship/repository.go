package internship

import "context"

// Repository defines the contract for the internship record store.
// The store owns the canonical ordered collection; the lifecycle
// manager mutates entities in place and then requests persistence.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// All returns the full ordered collection.
	All(ctx context.Context) ([]*Internship, error)

	// FindByID returns the internship with the given id.
	// Returns shared.ErrNotFound if no such posting exists.
	FindByID(ctx context.Context, id string) (*Internship, error)

	// Add appends a new posting to the collection. Does not persist.
	Add(ctx context.Context, i *Internship) error

	// Persist rewrites the whole backing collection.
	// A failure here wraps shared.ErrStorage and is fatal to the session.
	Persist(ctx context.Context) error
}
