// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cardvault/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Username string
	Password string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's basic information.
type SignUpOutput struct {
	User *entity.User
}

// SignInOutput returns the issued session token after a successful sign-in.
type SignInOutput struct {
	Token string
}

// AuthUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp creates a new account. A second sign-up with the same username
	// fails with domainerrors.ErrUsernameTaken.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// SignIn verifies credentials and issues a time-bound session token.
	// An unknown username and a wrong password yield distinct errors.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}
