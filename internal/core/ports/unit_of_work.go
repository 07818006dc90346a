package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// UnitOfWork coordinates a database transaction across repository calls and
// tracks the aggregates modified within it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	// TrackAggregate registers a modified aggregate for post-commit
	// processing, such as dispatching its accumulated side effects.
	TrackAggregate(id kernel.UUID, aggregate interface{})
}
