package commands

import (
	"context"
)

// StartDeliveryCommandHandler commits the Accepted -> OutForDelivery
// transition with the same guarded-write discipline as acceptance: the
// store's predicate on the pre-transition status picks the single winner.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for delivery claims.
// Requires an OrderUoWFactory for transactional persistence.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery worker's claim on the order.
// Outcomes follow the taxonomy on ports.OrderRepository.UpdateIf.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	claimed, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := claimed.Status()
	if err = claimed.StartDelivery(cmd.DeliveryID()); err != nil {
		return err
	}

	if err = repo.UpdateIf(ctx, claimed, before); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
