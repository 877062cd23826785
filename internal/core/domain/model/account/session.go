package account

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created through
	// the NewSession constructor.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession")
)

// Session is the resolved (identity, role) pair produced by the session
// resolver for one authenticated actor. It is an immutable value: a
// session-change event does not patch an existing Session, it produces a new
// one from scratch.
//
// An unauthenticated actor has no Session at all; there is no anonymous role.
type Session struct {
	identity kernel.UUID
	role     Role

	guard guard.ConstructorGuard
}

// NewSession creates a resolved session for the given identity and role.
// Both must be valid; there is no way to construct a session for an
// unrecognized role.
func NewSession(identity kernel.UUID, role Role) (Session, error) {
	if err := identity.Validate(); err != nil {
		return Session{}, err
	}
	if err := role.Validate(); err != nil {
		return Session{}, err
	}

	return Session{
		identity: identity,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session was created through the constructor.
// Returns ErrSessionIsNotConstructed for zero-value sessions.
func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// Identity returns the authenticated actor's identity.
func (s Session) Identity() kernel.UUID {
	return s.identity
}

// Role returns the actor's resolved role.
func (s Session) Role() Role {
	return s.role
}

// HasRole reports whether the session carries the given role.
func (s Session) HasRole(role Role) bool {
	return s.role == role
}
