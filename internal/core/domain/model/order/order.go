package order

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from placement through vendor acceptance
// and delivery claim to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid customer identity
//   - Status only ever advances Placed -> Accepted -> OutForDelivery -> Delivered
//   - The vendor identity is set exactly once, by the Placed -> Accepted transition
//   - The delivery worker identity is set exactly once, by the Accepted -> OutForDelivery transition
//   - Can only be created through NewOrder or RestoreOrder
//
// The transition methods validate the step against the current in-memory
// status. They deliberately do NOT arbitrate races: any number of actors may
// hold a copy of the same Placed order and both pass Accept locally. The
// single winner is decided by the store's conditional update, which re-checks
// the pre-transition status atomically at commit time.
//
// The claim transitions distinguish two failure classes. When the order
// already holds the status a claim would produce, the claim has been committed
// by a competing actor and the error wraps errs.ErrAlreadyClaimed. Any other
// status mismatch is a step the state machine does not define and wraps
// errs.ErrInvalidTransition.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the identity of the placing customer, set at creation
	customerID kernel.UUID

	// vendorID is the accepting vendor's identity (nil until Accepted)
	vendorID *kernel.UUID

	// deliveryID is the claiming delivery worker's identity (nil until OutForDelivery)
	deliveryID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement time, immutable
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a freshly placed Order with validation. This is the entry
// point of the lifecycle: the order starts in Placed status with no vendor and
// no delivery worker.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: identity of the placing customer (must be a valid UUID)
//   - createdAt: placement timestamp (must not be zero)
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(id kernel.UUID, customerID kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// Unlike NewOrder it accepts any point of the lifecycle, but it re-validates
// the full invariant set: the status must be valid and the recorded vendor and
// delivery worker identities must be consistent with it (a Delivered order
// without a vendor is corrupt, not restorable).
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	vendorID *kernel.UUID,
	deliveryID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateOwners(vendorID != nil, deliveryID != nil),
	); err != nil {
		return nil, err
	}

	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return nil, err
		}
		v := *vendorID
		o.vendorID = &v
	}

	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return nil, err
		}
		d := *deliveryID
		o.deliveryID = &d
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder or RestoreOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the identity of the placing customer.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Vendor returns the accepting vendor's identity.
// Returns nil while the order is still Placed.
func (o *Order) Vendor() *kernel.UUID {
	return o.vendorID
}

// DeliveryWorker returns the claiming delivery worker's identity.
// Returns nil until the order goes out for delivery.
func (o *Order) DeliveryWorker() *kernel.UUID {
	return o.deliveryID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Accept records a vendor's claim, advancing the order to Accepted.
//
// Business rules:
//   - The vendor identity must be valid
//   - The order must currently be Placed
//   - The vendor identity is written once and never rewritten
//
// Accept only validates the local copy. Persisting the claim must go through
// the repository's conditional update with Placed as the expected status, so
// that of N concurrent acceptors exactly one commits.
//
// Returns:
//   - nil on success
//   - error wrapping errs.ErrAlreadyClaimed if a competing vendor's
//     acceptance is already recorded on the order
//   - error wrapping errs.ErrInvalidTransition if the order is further along
func (o *Order) Accept(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		if o.status == Accepted {
			return errs.NewAlreadyClaimedError(o.id.String(), Placed.String())
		}
		return err
	}

	o.status = newStatus
	o.vendorID = &vendorID
	return nil
}

// StartDelivery records a delivery worker's claim, advancing the order to OutForDelivery.
//
// Business rules:
//   - The delivery worker identity must be valid
//   - The order must currently be Accepted
//   - The delivery worker identity is written once and never rewritten
//
// As with Accept, the race between concurrent claimants is settled by the
// conditional update at persistence time, not here. An order that already
// went out for delivery reports the committed claim as a conflict, any other
// status mismatch as an invalid transition.
func (o *Order) StartDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		if o.status == OutForDelivery {
			return errs.NewAlreadyClaimedError(o.id.String(), Accepted.String())
		}
		return err
	}

	o.status = newStatus
	o.deliveryID = &deliveryID
	return nil
}

// Complete marks the order as delivered.
//
// The order must currently be OutForDelivery. No identity parameter is needed:
// exactly one delivery worker already owns the order. Delivered is the
// terminal state of the lifecycle.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the placing customer's identity.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setCreatedAt validates and sets the placement time.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
