package handler

import (
	"log/slog"
	"net/http"

	"cardvault/internal/delivery/http/response"
	"cardvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// validateCardRequest is the payload for card validation and registration.
// The session token travels in the body, alongside the card fields.
type validateCardRequest struct {
	Token          string `json:"token" validate:"required"`
	CardholderName string `json:"cardholderName" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
}

// CardHandler holds dependencies for card-related handlers.
type CardHandler struct {
	uc     usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler, injected by Fx.
func NewCardHandler(uc usecase.CardUsecase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Validate handles the card validation and registration request.
func (h *CardHandler) Validate(c echo.Context) error {
	var req validateCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "malformed card validation request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterCard(c.Request().Context(), &usecase.RegisterCardInput{
		Token:          req.Token,
		CardholderName: req.CardholderName,
		CardNumber:     req.CardNumber,
		ExpirationDate: req.ExpirationDate,
		CVV:            req.CVV,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Status == usecase.CardStatusAlreadyExists {
		return response.Success(c, http.StatusOK, map[string]string{"message": "Credit card number already exists"}, "Credit card number already exists")
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Credit card validated and saved successfully"}, "Credit card validated and saved successfully")
}
