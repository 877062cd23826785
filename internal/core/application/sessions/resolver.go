// Package sessions turns bearer credentials into role-carrying sessions.
// Resolution happens once per request and is never cached: a revoked profile
// stops resolving on the next request.
package sessions

import (
	"context"

	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// Resolver builds an account session from a bearer token. The verifier
// attests the identity; the profile store supplies the role. Every failure
// along the way collapses to errs.ErrNotAuthenticated so callers cannot
// distinguish a forged token from a missing profile.
type Resolver struct {
	verifier ports.TokenVerifier
	profiles ports.ProfileStore
}

// NewResolver creates a session resolver over the identity boundary ports.
func NewResolver(verifier ports.TokenVerifier, profiles ports.ProfileStore) Resolver {
	return Resolver{
		verifier: verifier,
		profiles: profiles,
	}
}

// Resolve authenticates the token and returns the session for its identity.
func (r Resolver) Resolve(ctx context.Context, token string) (account.Session, error) {
	if token == "" {
		return account.Session{}, errs.ErrNotAuthenticated
	}

	identity, err := r.verifier.Verify(ctx, token)
	if err != nil {
		return account.Session{}, errs.ErrNotAuthenticated
	}

	role, err := r.profiles.GetRole(ctx, identity)
	if err != nil {
		return account.Session{}, errs.ErrNotAuthenticated
	}

	session, err := account.NewSession(identity, role)
	if err != nil {
		return account.Session{}, errs.ErrNotAuthenticated
	}

	return session, nil
}
