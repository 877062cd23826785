package sessions_test

import (
	"context"
	"errors"
	"testing"

	"orderflow/internal/core/application/sessions"
	"orderflow/internal/core/domain/model/account"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenVerifier struct{ mock.Mock }

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (kernel.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockProfileStore struct{ mock.Mock }

func (m *MockProfileStore) GetRole(ctx context.Context, identity kernel.UUID) (account.Role, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(account.Role), args.Error(1)
}

func TestResolver_Resolve_Success(t *testing.T) {
	ctx := t.Context()
	identity := kernel.NewUUID()

	verifier := new(MockTokenVerifier)
	profiles := new(MockProfileStore)
	verifier.On("Verify", ctx, "valid-token").Return(identity, nil).Once()
	profiles.On("GetRole", ctx, identity).Return(account.RoleVendor, nil).Once()

	resolver := sessions.NewResolver(verifier, profiles)
	session, err := resolver.Resolve(ctx, "valid-token")

	require.NoError(t, err)
	require.NoError(t, session.Validate())
	require.True(t, session.Identity().IsEqual(identity))
	require.Equal(t, account.RoleVendor, session.Role())
	verifier.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestResolver_Resolve_EmptyToken(t *testing.T) {
	resolver := sessions.NewResolver(new(MockTokenVerifier), new(MockProfileStore))

	_, err := resolver.Resolve(t.Context(), "")

	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestResolver_Resolve_VerifierRejects(t *testing.T) {
	ctx := t.Context()

	verifier := new(MockTokenVerifier)
	verifier.On("Verify", ctx, "forged").
		Return(kernel.UUID{}, errors.New("signature mismatch")).Once()

	resolver := sessions.NewResolver(verifier, new(MockProfileStore))
	_, err := resolver.Resolve(ctx, "forged")

	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestResolver_Resolve_ProfileMissing(t *testing.T) {
	ctx := t.Context()
	identity := kernel.NewUUID()

	verifier := new(MockTokenVerifier)
	profiles := new(MockProfileStore)
	verifier.On("Verify", ctx, "orphan").Return(identity, nil).Once()
	profiles.On("GetRole", ctx, identity).
		Return(account.RoleUnknown, errs.NewObjectNotFoundError("profile", identity.String())).Once()

	resolver := sessions.NewResolver(verifier, profiles)
	_, err := resolver.Resolve(ctx, "orphan")

	// A missing profile is indistinguishable from a bad token.
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestResolver_Resolve_ProfileStoreFailure(t *testing.T) {
	ctx := t.Context()
	identity := kernel.NewUUID()

	verifier := new(MockTokenVerifier)
	profiles := new(MockProfileStore)
	verifier.On("Verify", ctx, "token").Return(identity, nil).Once()
	profiles.On("GetRole", ctx, identity).
		Return(account.RoleUnknown, errors.New("connection refused")).Once()

	resolver := sessions.NewResolver(verifier, profiles)
	_, err := resolver.Resolve(ctx, "token")

	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}
