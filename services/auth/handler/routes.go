package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes all auth handlers
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
	}
}

// RegisterRoutes registers the public authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/login", h.authHandler.Login)
}
