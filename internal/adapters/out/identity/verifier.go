// Package identity implements the token boundary against the external
// identity provider. Tokens are HS256 JWTs whose subject carries the
// authenticated identity; the provider issues them, this adapter only
// verifies.
package identity

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// JWTVerifier implements ports.TokenVerifier over HS256 JWTs with a shared
// secret and a fixed issuer.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a verifier for the given shared secret and issuer.
func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if issuer == "" {
		return nil, fmt.Errorf("jwt issuer is required")
	}

	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Verify validates the token's signature, expiry, and issuer, and returns
// the identity recorded in its subject claim.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	identity, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("token subject is not an identity: %w", err)
	}

	return identity, nil
}

// Mint issues a signed token for the identity. The real identity provider
// owns issuance; this helper exists for local development and tests.
func (v *JWTVerifier) Mint(identity kernel.UUID, now time.Time, ttl time.Duration) (string, error) {
	if err := identity.Validate(); err != nil {
		return "", err
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive")
	}

	claims := jwt.RegisteredClaims{
		Subject:   identity.String(),
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}

	return signed, nil
}
