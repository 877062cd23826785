package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetDeliveryTasksQueryIsNotConstructed = errors.New(
		"GetDeliveryTasksQuery must be created via NewGetDeliveryTasksQuery constructor",
	)
)

// GetDeliveryTasksQuery retrieves the delivery board: accepted orders waiting
// for a worker to claim them plus orders already out for delivery. This is a
// parameterless query.
type GetDeliveryTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryTasksQuery creates a query for the delivery board.
func NewGetDeliveryTasksQuery() GetDeliveryTasksQuery {
	return GetDeliveryTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryTasksQueryIsNotConstructed if validation fails.
func (q GetDeliveryTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTasksQueryIsNotConstructed)
}

// GetDeliveryTasksQueryResponse is one entry on the delivery board. Status
// distinguishes claimable tasks (Accepted) from in-flight ones (OutForDelivery).
type GetDeliveryTasksQueryResponse struct {
	ID        kernel.UUID
	Status    order.Status
	CreatedAt time.Time
}
