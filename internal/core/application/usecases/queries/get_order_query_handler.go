package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderReader loads single order aggregates for the read side. Satisfied by
// the order repository bound to a non-transactional database connection;
// reads reuse the repository's mapping of the nested request records instead
// of duplicating it in SQL.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler retrieves the full state of a single order.
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle loads the order and returns its snapshot, including the current
// aggregate version callers need for subsequent commands.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	return aggregate.Snapshot(), nil
}
