package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetPlacedOrdersQueryIsNotConstructed = errors.New(
		"GetPlacedOrdersQuery must be created via NewGetPlacedOrdersQuery constructor",
	)
)

// GetPlacedOrdersQuery retrieves the vendor board: every order still waiting
// for a vendor to accept it. This is a parameterless query.
type GetPlacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlacedOrdersQuery creates a query for the vendor board.
func NewGetPlacedOrdersQuery() GetPlacedOrdersQuery {
	return GetPlacedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlacedOrdersQueryIsNotConstructed if validation fails.
func (q GetPlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrdersQueryIsNotConstructed)
}

// GetPlacedOrdersQueryResponse is one claimable order on the vendor board.
type GetPlacedOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	CreatedAt  time.Time
}
