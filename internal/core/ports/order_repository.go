// Package ports defines the contracts between the core and its external
// collaborators: the order store, the identity provider, and the profile
// store. These interfaces establish the boundary for dependency inversion and
// testability; in particular, the order store contract exposes only a
// conditional update, so read-then-write races are unrepresentable above this
// boundary.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The store is the single arbiter of claim races: there is no unconditional
// update. Every transition is committed through UpdateIf, whose status
// predicate is evaluated atomically at write time by the store.
type OrderRepository interface {
	// Add persists a freshly placed order.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIf persists a transitioned order, guarded by the status the
	// order held before the transition. The write takes effect only if the
	// stored record still has that status at commit time (and, for claim
	// transitions, still has no claim identity recorded), evaluated
	// atomically by the store, never by a prior read.
	//
	// Outcomes:
	//   - nil: this caller won; the transition is committed
	//   - errs.ErrAlreadyClaimed: a competing actor committed first; the
	//     caller must re-query, retrying the same transition cannot succeed
	//   - errs.ErrObjectNotFound: the order id does not exist
	//   - any other error: transient store failure, the whole operation may
	//     be retried by the caller
	//
	// Example:
	//
	//	before := o.Status()
	//	if err := o.Accept(vendorID); err != nil {
	//	    return err // invalid transition, store untouched
	//	}
	//	if err := repo.UpdateIf(ctx, o, before); err != nil {
	//	    return err // lost the race, or store failure
	//	}
	UpdateIf(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// GetAllByCustomer retrieves all orders placed by the given customer,
	// most recent first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllInStatuses retrieves all orders whose status is one of the given
	// set, oldest first. Used for the vendor and delivery claim boards.
	GetAllInStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
