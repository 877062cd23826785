package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("valid_identifiers", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewPlaceOrderCommand(orderID, customerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, customerID, cmd.CustomerID())
	})

	t.Run("invalid_order_id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("invalid_customer_id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
