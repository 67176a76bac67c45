// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cardvault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	CardHandler *handler.CardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
	cardHandler *handler.CardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		cardHandler: params.CardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/signUp", r.authHandler.SignUp)
	e.POST("/signIn", r.authHandler.SignIn)

	// Card validation; the session token is carried in the request body.
	e.POST("/validate", r.cardHandler.Validate)
}
