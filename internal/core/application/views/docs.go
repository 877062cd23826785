// Package views exposes the application's operations grouped by workflow
// role. Each view is the complete surface available to one role: a customer
// cannot reach vendor operations because no customer-facing type carries
// them, and every view method re-checks the session's role before touching a
// handler. Authorization therefore fails at the boundary, not deep inside a
// use case.
package views

import (
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/pkg/errs"
)

// requireRole gates a view method on the session's role. An invalid session
// is unauthenticated; a valid session with a different role is a permission
// failure, never silently narrowed.
func requireRole(session account.Session, role account.Role) error {
	if err := session.Validate(); err != nil {
		return errs.ErrNotAuthenticated
	}

	if !session.HasRole(role) {
		return errs.NewPermissionDeniedError(role.String(), session.Role().String())
	}

	return nil
}
