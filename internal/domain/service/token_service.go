package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in a session token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a new signed session token bound to the given user identity.
	// The token expires after the configured session TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature integrity and expiry of a token string and
	// returns its claims. Expired tokens fail with domainerrors.ErrTokenExpired;
	// any other signature or structure failure yields domainerrors.ErrTokenInvalid.
	Verify(tokenString string) (*Claims, error)
}
