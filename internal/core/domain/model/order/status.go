package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a strictly forward state machine: no transition skips a stage
// and no transition reverses.
//
// State transitions:
//
//	Placed ──> Accepted ──> OutForDelivery ──> Delivered
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. The persisted form uses
// the upper-case wire names ("PLACED", "ACCEPTED", ...).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer creates an order.
	// Orders in this status are visible on the vendor board.
	Placed

	// Accepted indicates exactly one vendor has claimed the order.
	// Orders in this status are visible on the delivery board.
	Accepted

	// OutForDelivery indicates exactly one delivery worker has claimed the order.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Accepted:       "ACCEPTED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "PLACED",
		Accepted:       "ACCEPTED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// StatusFromString parses the persisted wire name of a status.
// Returns an error for unrecognized input so corrupt records fail loudly on
// restore instead of flowing through as a reachable state.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, Accepted, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "PLACED", "ACCEPTED", "OUT_FOR_DELIVERY", or "DELIVERED" for valid
// statuses and "UNKNOWN" for anything else. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Placed -> Accepted (vendor claims the order)
//
// Any other starting status is an invalid transition: acceptance is a
// single-shot claim and cannot repeat or run ahead of placement.
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, error) wrapping errs.ErrInvalidTransition otherwise
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidTransitionError(s.String(), Accepted.String())
	}

	return Accepted, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Accepted -> OutForDelivery (delivery worker claims the order)
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, error) wrapping errs.ErrInvalidTransition otherwise
func (s Status) StartDelivery() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError(s.String(), OutForDelivery.String())
	}

	return OutForDelivery, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered (order handed to the customer)
//
// Delivered is terminal; completing an already delivered order is an invalid
// transition like any other.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) wrapping errs.ErrInvalidTransition otherwise
func (s Status) Complete() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}

	return Delivered, nil
}

// ValidateOwners validates the consistency between order status and the claim
// identities recorded on the order.
//
// Business rules:
//   - vendor is set iff status is Accepted, OutForDelivery, or Delivered
//   - delivery worker is set iff status is OutForDelivery or Delivered
//
// Parameters:
//   - hasVendor: whether the order carries a vendor identity
//   - hasDelivery: whether the order carries a delivery worker identity
//
// Returns a validation error if the status and recorded claims disagree.
func (s Status) ValidateOwners(hasVendor, hasDelivery bool) error {
	vendorRequired := s == Accepted || s == OutForDelivery || s == Delivered
	if hasVendor != vendorRequired {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is inconsistent with vendor presence %t", s.String(), hasVendor))
	}

	deliveryRequired := s == OutForDelivery || s == Delivered
	if hasDelivery != deliveryRequired {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is inconsistent with delivery worker presence %t", s.String(), hasDelivery))
	}

	return nil
}
