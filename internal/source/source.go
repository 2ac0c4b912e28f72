// Package source feeds entity collections to the list controllers and
// carries their mutations, either from bundled JSON fixtures or from the
// authenticated REST API.
package source

import "context"

// Source is one entity type's transport. Mutations return the
// server-supplied message (empty for fixture-backed sources) so callers can
// surface it in the notice area.
type Source[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record T) (string, error)
	Update(ctx context.Context, id int64, record T) (string, error)
	Delete(ctx context.Context, id int64) (string, error)

	// RefetchAfterMutation reports whether the authoritative copy lives
	// remotely, in which case the caller must reload the full collection
	// after a mutation instead of patching its local copy.
	RefetchAfterMutation() bool
}
