// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "cardvault/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate runs struct-tag validation and maps failures to the domain's
// validation error so the error handler renders a 400 with field details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
