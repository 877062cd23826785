package account

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Role identifies which of the three mutually exclusive workspaces an actor
// may enter. It is a closed set: parsing anything outside the three known
// values fails, and the caller treats the actor as unauthenticated.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and reviews their own history.
	RoleCustomer

	// RoleVendor accepts placed orders.
	RoleVendor

	// RoleDelivery claims accepted orders and completes deliveries.
	RoleDelivery
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleVendor:   "vendor",
		RoleDelivery: "delivery",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleVendor:   "vendor",
		RoleDelivery: "delivery",
	}
}

// RoleFromString parses the persisted role name ("customer", "vendor",
// "delivery"). Any other input is a validation error; the session resolver
// maps that to an unauthenticated actor.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a recognized role", s))
}

// Validate checks if the Role value is one of the three known roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
