// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The password is stored only as a bcrypt digest; the plaintext never leaves
// the sign-up/sign-in code paths.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // The unique login identifier, matched case-sensitively.
	PasswordHash string    // Stores the bcrypt-hashed password.
	Cards        []Card    // The user's validated cards, in insertion order.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasCardNumber reports whether the user already holds a card with the given
// number. The comparison is a byte-exact string match with no normalization.
func (u *User) HasCardNumber(number string) bool {
	for i := range u.Cards {
		if u.Cards[i].CardNumber == number {
			return true
		}
	}

	return false
}
