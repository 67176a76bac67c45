package card

import (
	"testing"

	domainerrors "cardvault/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLuhnValidator_KnownVectors(t *testing.T) {
	validator := NewLuhnValidator()

	valid := []string{
		"4532015112830366",
		"0",
		"4111111111111111",
		"79927398713",
	}
	for _, number := range valid {
		assert.NoError(t, validator.Validate(number), "expected valid number: %s", number)
	}

	invalid := []string{
		"1234567812345678",
		"4532015112830367",
		"1",
		"79927398710",
	}
	for _, number := range invalid {
		err := validator.Validate(number)
		assert.Error(t, err, "expected invalid number: %s", number)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCardNumber))
	}
}

func TestLuhnValidator_MalformedInput(t *testing.T) {
	validator := NewLuhnValidator()

	// Non-digit characters are a format error, not a checksum failure.
	malformed := []string{
		"",
		"4532 0151 1283 0366",
		"4532-0151-1283-0366",
		"4532O15112830366",
		"abc",
		"-123",
	}
	for _, number := range malformed {
		err := validator.Validate(number)
		assert.Error(t, err, "expected malformed input: %q", number)
		assert.True(t, errors.Is(err, domainerrors.ErrCardNumberMalformed), "expected format error for: %q", number)
		assert.False(t, errors.Is(err, domainerrors.ErrInvalidCardNumber))
	}
}

func TestLuhnValidator_Deterministic(t *testing.T) {
	validator := NewLuhnValidator()

	for range 10 {
		assert.NoError(t, validator.Validate("4532015112830366"))
		assert.Error(t, validator.Validate("1234567812345678"))
	}
}
