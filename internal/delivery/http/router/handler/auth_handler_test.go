package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverymw "cardvault/internal/delivery/http/middleware"
	"cardvault/internal/delivery/http/validator"
	domainerrors "cardvault/internal/domain/errors"
	"cardvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns canned results for handler tests.
type stubAuthUsecase struct {
	signUpErr error
	signInErr error
	token     string
}

func (s *stubAuthUsecase) SignUp(_ context.Context, _ *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}

	return &usecase.SignUpOutput{}, nil
}

func (s *stubAuthUsecase) SignIn(_ context.Context, _ *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}

	return &usecase.SignInOutput{Token: s.token}, nil
}

func newTestEcho(uc usecase.AuthUsecase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = deliverymw.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/signUp", h.SignUp)
	e.POST("/signIn", h.SignIn)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	e := newTestEcho(&stubAuthUsecase{})

	rec := doJSON(e, http.MethodPost, "/signUp", `{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User created successfully")
}

func TestAuthHandler_SignUp_UsernameTaken(t *testing.T) {
	e := newTestEcho(&stubAuthUsecase{signUpErr: domainerrors.ErrUsernameTaken})

	rec := doJSON(e, http.MethodPost, "/signUp", `{"username":"alice","password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
}

func TestAuthHandler_SignUp_MissingFields(t *testing.T) {
	e := newTestEcho(&stubAuthUsecase{})

	// Empty username is rejected before the use case runs.
	rec := doJSON(e, http.MethodPost, "/signUp", `{"password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_SignIn_ReturnsToken(t *testing.T) {
	e := newTestEcho(&stubAuthUsecase{token: "issued-token"})

	rec := doJSON(e, http.MethodPost, "/signIn", `{"username":"alice","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "issued-token", body.Data["token"])
}

func TestAuthHandler_SignIn_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "user not found", err: domainerrors.ErrUserNotFound, wantCode: http.StatusNotFound, wantBody: "USER_NOT_FOUND"},
		{name: "invalid credentials", err: domainerrors.ErrInvalidCredentials, wantCode: http.StatusUnauthorized, wantBody: "INVALID_CREDENTIALS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(&stubAuthUsecase{signInErr: tt.err})

			rec := doJSON(e, http.MethodPost, "/signIn", `{"username":"alice","password":"s3cret"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
