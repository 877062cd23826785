package ports

import (
	"context"

	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
)

// TokenVerifier is the boundary to the external identity provider. It turns
// an opaque credential (a bearer token) into the authenticated identity, or
// fails. Credential issuance and session persistence live entirely on the
// provider's side.
type TokenVerifier interface {
	// Verify validates the credential and returns the identity it attests.
	// Any failure (expired, malformed, bad signature) means the actor is
	// unauthenticated; the verifier does not distinguish further.
	Verify(ctx context.Context, token string) (kernel.UUID, error)
}

// ProfileStore is the boundary to the external profile store that maps an
// authenticated identity onto its role.
type ProfileStore interface {
	// GetRole looks up the role recorded for the identity.
	// Returns an error wrapping errs.ErrObjectNotFound when no profile
	// exists; callers treat that actor as unauthenticated.
	GetRole(ctx context.Context, identity kernel.UUID) (account.Role, error)
}
