package usecase

import "context"

// CardStatus describes the outcome of a card registration request.
type CardStatus string

const (
	// CardStatusCreated indicates the card passed validation and was appended
	// to the user's collection.
	CardStatusCreated CardStatus = "Created"
	// CardStatusAlreadyExists indicates the card number was already registered
	// for the user. This outcome is idempotent success, not an error.
	CardStatusAlreadyExists CardStatus = "AlreadyExists"
)

// RegisterCardInput defines the data required to validate and register a card.
// The session token gates the operation; the remaining fields form the card record.
type RegisterCardInput struct {
	Token          string
	CardholderName string
	CardNumber     string
	ExpirationDate string
	CVV            string
}

// RegisterCardOutput reports whether the card was newly stored or already present.
type RegisterCardOutput struct {
	Status CardStatus
}

// CardUsecase defines the interface for card validation and registration.
type CardUsecase interface {
	// RegisterCard verifies the session token, deduplicates against the user's
	// existing card numbers, validates the number's checksum, and appends the
	// record. On success the record is present exactly once in the collection.
	RegisterCard(ctx context.Context, input *RegisterCardInput) (*RegisterCardOutput, error)
}
