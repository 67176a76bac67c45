// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a single validated payment card belonging to a user.
// Cards are immutable once appended; there is no update or removal operation.
// Within one user's collection, card numbers are unique.
type Card struct {
	ID             uuid.UUID // The unique ID for this card record.
	UserID         uuid.UUID // Links this card to the User it belongs to.
	CardholderName string    // The name printed on the card.
	CardNumber     string    // The card number as a plain digit string.
	ExpirationDate string    // The expiration date as provided; format is not validated.
	CVV            string    // The card verification value, stored as provided.
	CreatedAt      time.Time // Timestamp of when this card was registered.
}
