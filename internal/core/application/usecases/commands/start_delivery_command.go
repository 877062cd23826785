package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrStartDeliveryCommandIsNotConstructed = errors.New(
		"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
	)
)

// StartDeliveryCommand represents a delivery worker's attempt to claim an
// accepted order. The race between concurrent claimants resolves exactly like
// the vendor race: one winner, everyone else gets errs.ErrAlreadyClaimed.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command for a delivery worker to claim an order.
// Validates both identifiers. Returns an error if any validation fails.
func NewStartDeliveryCommand(orderID kernel.UUID, deliveryID kernel.UUID) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryID(deliveryID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartDeliveryCommandIsNotConstructed if validation fails.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c StartDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryID returns the claiming delivery worker's identity.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *StartDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
