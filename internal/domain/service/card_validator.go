package service

// CardValidator defines the interface for structural validation of card numbers.
type CardValidator interface {
	// Validate checks a card number string. It fails with
	// domainerrors.ErrCardNumberMalformed when the input is empty or contains
	// non-digit characters, and with domainerrors.ErrInvalidCardNumber when
	// the checksum does not hold. Returns nil for a valid number.
	Validate(number string) error
}
