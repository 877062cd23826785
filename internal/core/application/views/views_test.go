package views_test

import (
	"context"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/application/views"
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

type stubHandlers struct {
	placedCommands   []commands.PlaceOrderCommand
	acceptedCommands []commands.AcceptOrderCommand
	startedCommands  []commands.StartDeliveryCommand
	completeCommands []commands.CompleteOrderCommand

	customerOrderCalls int
	placedBoardCalls   int
	deliveryBoardCalls int

	err error
}

func (s *stubHandlers) Handle(_ context.Context, input any) error {
	switch cmd := input.(type) {
	case commands.PlaceOrderCommand:
		s.placedCommands = append(s.placedCommands, cmd)
	case commands.AcceptOrderCommand:
		s.acceptedCommands = append(s.acceptedCommands, cmd)
	case commands.StartDeliveryCommand:
		s.startedCommands = append(s.startedCommands, cmd)
	case commands.CompleteOrderCommand:
		s.completeCommands = append(s.completeCommands, cmd)
	}
	return s.err
}

type stubPlaceOrderHandler struct{ s *stubHandlers }

func (h stubPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error {
	return h.s.Handle(ctx, cmd)
}

type stubAcceptOrderHandler struct{ s *stubHandlers }

func (h stubAcceptOrderHandler) Handle(ctx context.Context, cmd commands.AcceptOrderCommand) error {
	return h.s.Handle(ctx, cmd)
}

type stubStartDeliveryHandler struct{ s *stubHandlers }

func (h stubStartDeliveryHandler) Handle(ctx context.Context, cmd commands.StartDeliveryCommand) error {
	return h.s.Handle(ctx, cmd)
}

type stubCompleteOrderHandler struct{ s *stubHandlers }

func (h stubCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error {
	return h.s.Handle(ctx, cmd)
}

type stubCustomerOrdersReader struct{ s *stubHandlers }

func (h stubCustomerOrdersReader) Handle(
	_ context.Context, _ queries.GetCustomerOrdersQuery,
) ([]queries.GetCustomerOrdersQueryResponse, error) {
	h.s.customerOrderCalls++
	return []queries.GetCustomerOrdersQueryResponse{}, h.s.err
}

type stubPlacedOrdersReader struct{ s *stubHandlers }

func (h stubPlacedOrdersReader) Handle(
	_ context.Context, _ queries.GetPlacedOrdersQuery,
) ([]queries.GetPlacedOrdersQueryResponse, error) {
	h.s.placedBoardCalls++
	return []queries.GetPlacedOrdersQueryResponse{}, h.s.err
}

type stubDeliveryTasksReader struct{ s *stubHandlers }

func (h stubDeliveryTasksReader) Handle(
	_ context.Context, _ queries.GetDeliveryTasksQuery,
) ([]queries.GetDeliveryTasksQueryResponse, error) {
	h.s.deliveryBoardCalls++
	return []queries.GetDeliveryTasksQueryResponse{}, h.s.err
}

func newSession(t *testing.T, role account.Role) account.Session {
	t.Helper()

	session, err := account.NewSession(kernel.NewUUID(), role)
	require.NoError(t, err)
	return session
}

func newViews(s *stubHandlers) (views.CustomerView, views.VendorView, views.DeliveryView) {
	customer := views.NewCustomerView(stubPlaceOrderHandler{s}, stubCustomerOrdersReader{s})
	vendor := views.NewVendorView(stubPlacedOrdersReader{s}, stubAcceptOrderHandler{s})
	delivery := views.NewDeliveryView(
		stubDeliveryTasksReader{s}, stubStartDeliveryHandler{s}, stubCompleteOrderHandler{s},
	)
	return customer, vendor, delivery
}

func TestCustomerView_Place_UsesSessionIdentity(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	customer, _, _ := newViews(stub)
	session := newSession(t, account.RoleCustomer)

	orderID, err := customer.Place(ctx, session)

	require.NoError(t, err)
	require.NoError(t, orderID.Validate())
	require.Len(t, stub.placedCommands, 1)
	require.True(t, stub.placedCommands[0].OrderID().IsEqual(orderID))
	require.True(t, stub.placedCommands[0].CustomerID().IsEqual(session.Identity()))
}

func TestCustomerView_ListOwn_ScopedToSessionCustomer(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	customer, _, _ := newViews(stub)

	_, err := customer.ListOwn(ctx, newSession(t, account.RoleCustomer))

	require.NoError(t, err)
	require.Equal(t, 1, stub.customerOrderCalls)
}

func TestVendorView_Accept_UsesSessionIdentity(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	_, vendor, _ := newViews(stub)
	session := newSession(t, account.RoleVendor)
	orderID := kernel.NewUUID()

	require.NoError(t, vendor.Accept(ctx, session, orderID))
	require.Len(t, stub.acceptedCommands, 1)
	require.True(t, stub.acceptedCommands[0].OrderID().IsEqual(orderID))
	require.True(t, stub.acceptedCommands[0].VendorID().IsEqual(session.Identity()))
}

func TestDeliveryView_StartDelivery_UsesSessionIdentity(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	_, _, delivery := newViews(stub)
	session := newSession(t, account.RoleDelivery)
	orderID := kernel.NewUUID()

	require.NoError(t, delivery.StartDelivery(ctx, session, orderID))
	require.Len(t, stub.startedCommands, 1)
	require.True(t, stub.startedCommands[0].DeliveryID().IsEqual(session.Identity()))
}

func TestDeliveryView_Complete_CarriesOnlyOrderID(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	_, _, delivery := newViews(stub)
	orderID := kernel.NewUUID()

	require.NoError(t, delivery.Complete(ctx, newSession(t, account.RoleDelivery), orderID))
	require.Len(t, stub.completeCommands, 1)
	require.True(t, stub.completeCommands[0].OrderID().IsEqual(orderID))
}

func TestViews_RejectWrongRole(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	customer, vendor, delivery := newViews(stub)

	customerSession := newSession(t, account.RoleCustomer)
	vendorSession := newSession(t, account.RoleVendor)
	deliverySession := newSession(t, account.RoleDelivery)
	orderID := kernel.NewUUID()

	tests := map[string]func() error{
		"vendor_cannot_place": func() error {
			_, err := customer.Place(ctx, vendorSession)
			return err
		},
		"delivery_cannot_list_own_orders": func() error {
			_, err := customer.ListOwn(ctx, deliverySession)
			return err
		},
		"customer_cannot_list_vendor_board": func() error {
			_, err := vendor.ListClaimable(ctx, customerSession)
			return err
		},
		"delivery_cannot_accept": func() error {
			return vendor.Accept(ctx, deliverySession, orderID)
		},
		"vendor_cannot_list_delivery_board": func() error {
			_, err := delivery.ListClaimable(ctx, vendorSession)
			return err
		},
		"customer_cannot_start_delivery": func() error {
			return delivery.StartDelivery(ctx, customerSession, orderID)
		},
		"vendor_cannot_complete": func() error {
			return delivery.Complete(ctx, vendorSession, orderID)
		},
	}

	for name, call := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, call(), errs.ErrPermissionDenied)
		})
	}

	// No stub was ever reached.
	require.Empty(t, stub.placedCommands)
	require.Empty(t, stub.acceptedCommands)
	require.Empty(t, stub.startedCommands)
	require.Empty(t, stub.completeCommands)
	require.Zero(t, stub.customerOrderCalls)
	require.Zero(t, stub.placedBoardCalls)
	require.Zero(t, stub.deliveryBoardCalls)
}

func TestViews_RejectUnconstructedSession(t *testing.T) {
	ctx := t.Context()
	stub := &stubHandlers{}
	customer, vendor, delivery := newViews(stub)
	var session account.Session

	_, err := customer.Place(ctx, session)
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)

	_, err = vendor.ListClaimable(ctx, session)
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)

	require.ErrorIs(t, delivery.Complete(ctx, session, kernel.NewUUID()), errs.ErrNotAuthenticated)
}
