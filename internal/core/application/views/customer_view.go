package views

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
)

// PlaceOrderHandler processes order placement commands.
type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
}

// CustomerOrdersReader lists a customer's order history.
type CustomerOrdersReader interface {
	Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.GetCustomerOrdersQueryResponse, error)
}

// CustomerView is the customer workspace: place orders and follow their
// progress. The customer identity always comes from the session, never from
// request input.
type CustomerView struct {
	placeOrder PlaceOrderHandler
	listOrders CustomerOrdersReader
}

// NewCustomerView creates the customer workspace over its handlers.
func NewCustomerView(placeOrder PlaceOrderHandler, listOrders CustomerOrdersReader) CustomerView {
	return CustomerView{
		placeOrder: placeOrder,
		listOrders: listOrders,
	}
}

// Place creates a new order owned by the session's customer and returns its
// identifier.
func (v CustomerView) Place(ctx context.Context, session account.Session) (kernel.UUID, error) {
	if err := requireRole(session, account.RoleCustomer); err != nil {
		return kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, session.Identity())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = v.placeOrder.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}

// ListOwn returns the session customer's orders, newest first.
func (v CustomerView) ListOwn(
	ctx context.Context,
	session account.Session,
) ([]queries.GetCustomerOrdersQueryResponse, error) {
	if err := requireRole(session, account.RoleCustomer); err != nil {
		return nil, err
	}

	query, err := queries.NewGetCustomerOrdersQuery(session.Identity())
	if err != nil {
		return nil, err
	}

	return v.listOrders.Handle(ctx, query)
}
