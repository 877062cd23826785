package services

import (
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/pkg/errs"
)

// Workspace identifies one of the three mutually exclusive areas an
// authenticated actor may be routed into.
type Workspace int

const (
	// WorkspaceNone is the zero value; only produced alongside an error.
	WorkspaceNone Workspace = iota

	// WorkspaceCustomer hosts order placement and order history.
	WorkspaceCustomer

	// WorkspaceVendor hosts the board of placed orders awaiting acceptance.
	WorkspaceVendor

	// WorkspaceDelivery hosts the board of accepted and in-flight deliveries.
	WorkspaceDelivery
)

// String returns a human-readable workspace name for logs.
func (w Workspace) String() string {
	switch w {
	case WorkspaceCustomer:
		return "customer"
	case WorkspaceVendor:
		return "vendor"
	case WorkspaceDelivery:
		return "delivery"
	default:
		return "none"
	}
}

// RoleRouter decides which workspace a resolved session may enter.
//
// The router is stateless and recomputes the route from scratch on every
// call: a session-change event never patches a previously computed route, it
// simply produces a new session that is routed again. An actor without a
// valid session never reaches the router; it is sent to the login entry point
// by the transport layer.
type RoleRouter struct{}

// NewRoleRouter creates a RoleRouter.
func NewRoleRouter() *RoleRouter {
	return &RoleRouter{}
}

// Route maps a resolved session onto exactly one workspace.
//
// Returns:
//   - the workspace matching the session's role
//   - errs.ErrNotAuthenticated for zero-value sessions or roles outside the
//     closed set (defense in depth; NewSession already rejects both)
func (r *RoleRouter) Route(session account.Session) (Workspace, error) {
	if err := session.Validate(); err != nil {
		return WorkspaceNone, errs.ErrNotAuthenticated
	}

	switch session.Role() {
	case account.RoleCustomer:
		return WorkspaceCustomer, nil
	case account.RoleVendor:
		return WorkspaceVendor, nil
	case account.RoleDelivery:
		return WorkspaceDelivery, nil
	default:
		return WorkspaceNone, errs.ErrNotAuthenticated
	}
}
