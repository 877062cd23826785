package queries

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryTasksQueryHandler reads the delivery board from the database.
type GetDeliveryTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTasksQueryHandler creates a handler for delivery board queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryTasksQueryHandler(db *gorm.DB) GetDeliveryTasksQueryHandler {
	return GetDeliveryTasksQueryHandler{db: db}
}

// Handle executes the query to retrieve accepted and out-for-delivery orders.
// Results are sorted by creation time, oldest first.
func (h GetDeliveryTasksQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTasksQuery,
) ([]GetDeliveryTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetDeliveryTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			created_at
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, order.Accepted.String(), order.OutForDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status string
		var createdAt time.Time

		if err = rows.Scan(&id, &status, &createdAt); err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		taskStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		tasks = append(tasks, GetDeliveryTasksQueryResponse{
			ID:        taskID,
			Status:    taskStatus,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
