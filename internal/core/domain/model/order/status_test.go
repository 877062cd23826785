package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "UNKNOWN"},
		{order.Placed, "PLACED"},
		{order.Accepted, "ACCEPTED"},
		{order.OutForDelivery, "OUT_FOR_DELIVERY"},
		{order.Delivered, "DELIVERED"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_all_valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Accepted, order.OutForDelivery, order.Delivered} {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unrecognized_input", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_wire_name", func(t *testing.T) {
		_, err := order.StatusFromString("UNKNOWN")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Accepted, order.OutForDelivery, order.Delivered} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(42)} {
			require.Error(t, s.Validate())
		}
	})
}

// TestStatus_TransitionMatrix exercises every (state, transition) pair and
// asserts that the only legal path is
// Placed -> Accepted -> OutForDelivery -> Delivered.
func TestStatus_TransitionMatrix(t *testing.T) {
	all := []order.Status{order.Placed, order.Accepted, order.OutForDelivery, order.Delivered}

	t.Run("accept", func(t *testing.T) {
		for _, from := range all {
			next, err := from.Accept()
			if from == order.Placed {
				require.NoError(t, err)
				assert.Equal(t, order.Accepted, next)
				continue
			}
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "accept from %s", from)
		}
	})

	t.Run("start_delivery", func(t *testing.T) {
		for _, from := range all {
			next, err := from.StartDelivery()
			if from == order.Accepted {
				require.NoError(t, err)
				assert.Equal(t, order.OutForDelivery, next)
				continue
			}
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "start delivery from %s", from)
		}
	})

	t.Run("complete", func(t *testing.T) {
		for _, from := range all {
			next, err := from.Complete()
			if from == order.OutForDelivery {
				require.NoError(t, err)
				assert.Equal(t, order.Delivered, next)
				continue
			}
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "complete from %s", from)
		}
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		_, acceptErr := order.Delivered.Accept()
		_, startErr := order.Delivered.StartDelivery()
		_, completeErr := order.Delivered.Complete()

		require.Error(t, acceptErr)
		require.Error(t, startErr)
		require.Error(t, completeErr)
		assert.True(t, order.Delivered.IsTerminal())
		assert.False(t, order.Placed.IsTerminal())
	})
}

func TestStatus_ValidateOwners(t *testing.T) {
	testCases := []struct {
		name        string
		status      order.Status
		hasVendor   bool
		hasDelivery bool
		valid       bool
	}{
		{"placed_without_owners", order.Placed, false, false, true},
		{"placed_with_vendor", order.Placed, true, false, false},
		{"accepted_with_vendor", order.Accepted, true, false, true},
		{"accepted_without_vendor", order.Accepted, false, false, false},
		{"accepted_with_delivery", order.Accepted, true, true, false},
		{"out_for_delivery_with_both", order.OutForDelivery, true, true, true},
		{"out_for_delivery_without_delivery", order.OutForDelivery, true, false, false},
		{"delivered_with_both", order.Delivered, true, true, true},
		{"delivered_without_vendor", order.Delivered, false, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.ValidateOwners(tc.hasVendor, tc.hasDelivery)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
