package commands

import (
	"context"
)

// AcceptOrderCommandHandler commits the Placed -> Accepted transition.
//
// The handler reads the order, applies the transition on the aggregate and
// issues the conditional update with Placed as the expected status. Losing
// the race surfaces errs.ErrAlreadyClaimed on either path: the aggregate
// reports it when the read already shows a competitor's committed acceptance,
// the store reports it when that commit lands between the read and the write.
// The handler never retries.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAlreadyClaimed):
//	    // expected under contention: refresh the board
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // logic fault: the order was out for delivery or delivered already
//	case err != nil:
//	    // transient store failure, safe to retry the whole operation
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for vendor acceptance.
// Requires an OrderUoWFactory for transactional persistence.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor's claim on the order.
// Outcomes follow the taxonomy on ports.OrderRepository.UpdateIf.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	if err = claimed.Accept(cmd.VendorID()); err != nil {
		return err
	}

	if err = repo.UpdateIf(ctx, claimed, before); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
