// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cardvault/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameExists is returned when creating a user whose username is already taken.
	ErrUsernameExists = errors.New("username already exists")
	// ErrCardExists is returned by AppendCard when the user already holds a card
	// with the same number.
	ErrCardExists = errors.New("card number already registered for user")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including their cards
	// in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	// The match is exact and case-sensitive.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// AppendCard appends a card to the user's collection iff no card with the
	// same number exists yet. The check and the insert are a single atomic
	// operation; concurrent appends of the same number cannot both succeed.
	// Returns ErrCardExists when the number is already present.
	AppendCard(ctx context.Context, userID uuid.UUID, card *entity.Card) error
}
