package views

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
)

// StartDeliveryHandler processes delivery claim commands.
type StartDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.StartDeliveryCommand) error
}

// CompleteOrderHandler processes order completion commands.
type CompleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
}

// DeliveryTasksReader lists accepted and out-for-delivery orders.
type DeliveryTasksReader interface {
	Handle(ctx context.Context, query queries.GetDeliveryTasksQuery) ([]queries.GetDeliveryTasksQueryResponse, error)
}

// DeliveryView is the delivery workspace: browse claimable tasks, claim one,
// and mark it delivered.
type DeliveryView struct {
	tasks    DeliveryTasksReader
	start    StartDeliveryHandler
	complete CompleteOrderHandler
}

// NewDeliveryView creates the delivery workspace over its handlers.
func NewDeliveryView(
	tasks DeliveryTasksReader,
	start StartDeliveryHandler,
	complete CompleteOrderHandler,
) DeliveryView {
	return DeliveryView{
		tasks:    tasks,
		start:    start,
		complete: complete,
	}
}

// ListClaimable returns the delivery board: accepted orders waiting for a
// worker plus orders already out for delivery, oldest first.
func (v DeliveryView) ListClaimable(
	ctx context.Context,
	session account.Session,
) ([]queries.GetDeliveryTasksQueryResponse, error) {
	if err := requireRole(session, account.RoleDelivery); err != nil {
		return nil, err
	}

	return v.tasks.Handle(ctx, queries.NewGetDeliveryTasksQuery())
}

// StartDelivery claims an accepted order for the session's delivery worker.
func (v DeliveryView) StartDelivery(ctx context.Context, session account.Session, orderID kernel.UUID) error {
	if err := requireRole(session, account.RoleDelivery); err != nil {
		return err
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, session.Identity())
	if err != nil {
		return err
	}

	return v.start.Handle(ctx, cmd)
}

// Complete marks an out-for-delivery order as delivered.
func (v DeliveryView) Complete(ctx context.Context, session account.Session, orderID kernel.UUID) error {
	if err := requireRole(session, account.RoleDelivery); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	return v.complete.Handle(ctx, cmd)
}
