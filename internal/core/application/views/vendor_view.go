package views

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
)

// AcceptOrderHandler processes vendor claim commands.
type AcceptOrderHandler interface {
	Handle(ctx context.Context, cmd commands.AcceptOrderCommand) error
}

// PlacedOrdersReader lists orders awaiting vendor acceptance.
type PlacedOrdersReader interface {
	Handle(ctx context.Context, query queries.GetPlacedOrdersQuery) ([]queries.GetPlacedOrdersQueryResponse, error)
}

// VendorView is the vendor workspace: browse the board of placed orders and
// claim them. The claiming vendor identity always comes from the session.
type VendorView struct {
	board  PlacedOrdersReader
	accept AcceptOrderHandler
}

// NewVendorView creates the vendor workspace over its handlers.
func NewVendorView(board PlacedOrdersReader, accept AcceptOrderHandler) VendorView {
	return VendorView{
		board:  board,
		accept: accept,
	}
}

// ListClaimable returns every order still waiting for a vendor, oldest first.
// The board is a snapshot; a listed order may already be claimed by the time
// the vendor acts on it, and Accept reports that as a conflict.
func (v VendorView) ListClaimable(
	ctx context.Context,
	session account.Session,
) ([]queries.GetPlacedOrdersQueryResponse, error) {
	if err := requireRole(session, account.RoleVendor); err != nil {
		return nil, err
	}

	return v.board.Handle(ctx, queries.NewGetPlacedOrdersQuery())
}

// Accept claims a placed order for the session's vendor.
func (v VendorView) Accept(ctx context.Context, session account.Session, orderID kernel.UUID) error {
	if err := requireRole(session, account.RoleVendor); err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, session.Identity())
	if err != nil {
		return err
	}

	return v.accept.Handle(ctx, cmd)
}
