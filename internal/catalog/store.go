package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Store owns the ordered collection of repositories. Every method is one
// atomic step: no caller observes a partially applied change.
type Store interface {
	// List returns every repository in insertion order.
	List(ctx context.Context) ([]Repository, error)
	// Create appends repo to the end of the collection.
	Create(ctx context.Context, repo Repository) (Repository, error)
	// Update applies mutate to the repository with the given id in place.
	Update(ctx context.Context, id uuid.UUID, mutate func(*Repository)) (Repository, error)
	// Delete removes the repository with the given id.
	Delete(ctx context.Context, id uuid.UUID) error
}
