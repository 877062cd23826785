package commands

import (
	"context"
)

// CompleteOrderCommandHandler commits the OutForDelivery -> Delivered
// transition. Completion is still a guarded write: if the order is not
// OutForDelivery anymore (or never was), the attempt fails without mutating
// the record.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion of an order.
// Outcomes follow the taxonomy on ports.OrderRepository.UpdateIf; an order
// that is not OutForDelivery yields errs.ErrInvalidTransition before any
// write is issued.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	completed, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := completed.Status()
	if err = completed.Complete(); err != nil {
		return err
	}

	if err = repo.UpdateIf(ctx, completed, before); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
