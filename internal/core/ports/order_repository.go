// Package ports defines the outbound contracts of the core: persistence,
// escrow, notification, and time. Adapters implement them; the application
// layer depends only on these interfaces.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under an
	// optimistic version guard: the write succeeds only if the stored
	// version still equals the aggregate's loaded version, and bumps the
	// stored version by one. A lost race surfaces as a VersionConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier together
	// with its nested request records.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindIDsWithDueDeadlines returns the identifiers of orders that have at
	// least one expired deadline at the given instant: an elapsed client
	// response window, an unanswered cancellation request, or an unanswered
	// open dispute. The scheduler re-checks each candidate under the
	// per-order lock before applying anything.
	FindIDsWithDueDeadlines(ctx context.Context, now time.Time) ([]kernel.UUID, error)
}
