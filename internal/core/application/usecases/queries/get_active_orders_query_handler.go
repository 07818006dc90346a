package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders from the database.
// Reads the orders table directly; the full nested records of a specific
// order are available through GetOrderQuery.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders that are neither completed
// nor cancelled. Results are sorted by expected delivery date so the most
// urgent orders come first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			professional_id,
			amount,
			status,
			delivery_status,
			expected_delivery,
			auto_complete_at,
			version
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY expected_delivery
	`, int(order.StatusCompleted), int(order.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, clientID, professionalID uuid.UUID
		var status, deliveryStatus int

		err = rows.Scan(
			&id,
			&clientID,
			&professionalID,
			&resp.Amount,
			&status,
			&deliveryStatus,
			&resp.ExpectedDelivery,
			&resp.AutoCompleteAt,
			&resp.Version,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if resp.ProfessionalID, err = kernel.UUIDFromBytes(professionalID[:]); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.DeliveryStatus = order.DeliveryStatus(deliveryStatus).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
