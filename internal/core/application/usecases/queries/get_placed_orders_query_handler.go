package queries

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPlacedOrdersQueryHandler reads the vendor board from the database.
// The board lists placed orders only; a row disappears from it the moment a
// vendor's conditional accept commits.
type GetPlacedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPlacedOrdersQueryHandler creates a handler for vendor board queries.
// Requires a GORM database connection for query execution.
func NewGetPlacedOrdersQueryHandler(db *gorm.DB) GetPlacedOrdersQueryHandler {
	return GetPlacedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders awaiting acceptance.
// Results are sorted by creation time, oldest first, so long-waiting orders
// surface at the top of the board.
func (h GetPlacedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPlacedOrdersQuery,
) ([]GetPlacedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPlacedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Placed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, customerID uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(&id, &customerID, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		customer, customerErr := kernel.UUIDFromBytes(customerID[:])
		if customerErr != nil {
			return nil, customerErr
		}

		orders = append(orders, GetPlacedOrdersQueryResponse{
			ID:         orderID,
			CustomerID: customer,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
