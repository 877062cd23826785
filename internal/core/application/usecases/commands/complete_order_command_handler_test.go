package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOutForDeliveryOrder(t *testing.T, orderID kernel.UUID) *order.Order {
	t.Helper()

	o := newAcceptedOrder(t, orderID)
	require.NoError(t, o.StartDelivery(kernel.NewUUID()))
	return o
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID)
	outForDelivery := newOutForDeliveryOrder(t, orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(outForDelivery, nil).Once(),
		repo.On("UpdateIf", mock.Anything, outForDelivery, order.OutForDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Delivered, outForDelivery.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	tests := map[string]func(*testing.T, kernel.UUID) *order.Order{
		"placed_order":    newPlacedOrder,
		"accepted_order":  newAcceptedOrder,
		"delivered_order": newDeliveredOrder,
	}

	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			orderID := kernel.NewUUID()
			cmd, _ := commands.NewCompleteOrderCommand(orderID)
			current := build(t, orderID)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, orderID).Return(current, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCompleteOrderCommandHandler(factory)

			require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
			repo.AssertNotCalled(t, "UpdateIf", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func newDeliveredOrder(t *testing.T, orderID kernel.UUID) *order.Order {
	t.Helper()

	o := newOutForDeliveryOrder(t, orderID)
	require.NoError(t, o.Complete())
	return o
}

func TestCompleteOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID)
	outForDelivery := newOutForDeliveryOrder(t, orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(outForDelivery, nil).Once(),
		repo.On("UpdateIf", mock.Anything, outForDelivery, order.OutForDelivery).
			Return(errs.NewAlreadyClaimedError(orderID.String(), order.OutForDelivery.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
