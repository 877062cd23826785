package identity_test

import (
	"testing"
	"time"

	"orderflow/internal/adapters/out/identity"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "orderflow"
)

func newVerifier(t *testing.T) *identity.JWTVerifier {
	t.Helper()

	verifier, err := identity.NewJWTVerifier(testSecret, testIssuer)
	require.NoError(t, err)
	return verifier
}

func TestNewJWTVerifier_RequiresSecretAndIssuer(t *testing.T) {
	_, err := identity.NewJWTVerifier("", testIssuer)
	require.Error(t, err)

	_, err = identity.NewJWTVerifier(testSecret, "")
	require.Error(t, err)
}

func TestJWTVerifier_MintAndVerify_RoundTrip(t *testing.T) {
	verifier := newVerifier(t)
	subject := kernel.NewUUID()

	token, err := verifier.Mint(subject, time.Now(), time.Hour)
	require.NoError(t, err)

	resolved, err := verifier.Verify(t.Context(), token)
	require.NoError(t, err)
	require.True(t, subject.IsEqual(resolved))
}

func TestJWTVerifier_Verify_ExpiredToken(t *testing.T) {
	verifier := newVerifier(t)

	token, err := verifier.Mint(kernel.NewUUID(), time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), token)
	require.Error(t, err)
}

func TestJWTVerifier_Verify_WrongSecret(t *testing.T) {
	verifier := newVerifier(t)

	forger, err := identity.NewJWTVerifier("other-secret", testIssuer)
	require.NoError(t, err)

	forged, err := forger.Mint(kernel.NewUUID(), time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), forged)
	require.Error(t, err)
}

func TestJWTVerifier_Verify_WrongIssuer(t *testing.T) {
	verifier := newVerifier(t)

	other, err := identity.NewJWTVerifier(testSecret, "someone-else")
	require.NoError(t, err)

	token, err := other.Mint(kernel.NewUUID(), time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), token)
	require.Error(t, err)
}

func TestJWTVerifier_Verify_UnsignedTokenRejected(t *testing.T) {
	verifier := newVerifier(t)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   kernel.NewUUID().String(),
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), token)
	require.Error(t, err)
}

func TestJWTVerifier_Verify_SubjectMustBeIdentity(t *testing.T) {
	verifier := newVerifier(t)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), token)
	require.Error(t, err)
}

func TestJWTVerifier_Mint_Validation(t *testing.T) {
	verifier := newVerifier(t)

	_, err := verifier.Mint(kernel.UUID{}, time.Now(), time.Hour)
	require.Error(t, err)

	_, err = verifier.Mint(kernel.NewUUID(), time.Now(), 0)
	require.Error(t, err)
}
