// Package card provides the concrete implementation of card-number validation.
package card

import (
	domainerrors "cardvault/internal/domain/errors"
	"cardvault/internal/domain/service"
)

// luhnValidator implements the CardValidator interface using the Luhn checksum.
type luhnValidator struct{}

// NewLuhnValidator is the constructor for luhnValidator.
func NewLuhnValidator() service.CardValidator {
	return &luhnValidator{}
}

// Validate checks a card number string against the Luhn checksum.
// The character set is validated first: a non-digit byte is a malformed
// input, not a checksum failure, and is never silently skipped.
func (v *luhnValidator) Validate(number string) error {
	if number == "" {
		return domainerrors.ErrCardNumberMalformed.WrapMessage("card number is empty")
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return domainerrors.ErrCardNumberMalformed.WrapMessage("card number contains non-digit characters")
		}
	}

	// From the rightmost digit moving left, double every second digit;
	// a doubled digit above 9 has 9 subtracted. Valid iff the sum of all
	// digits is divisible by 10.
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	if sum%10 != 0 {
		return domainerrors.ErrInvalidCardNumber.WrapMessage("card number failed checksum")
	}

	return nil
}
