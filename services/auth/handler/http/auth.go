package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/internal/pkg/logger"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/internal/utils"
	"github.com/prasetya/catatan/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Signup handles account registration requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var request models.SignupRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.Signup(c.Request().Context(), &request); err != nil {
		logger.Warn("Signup failed",
			logger.String("email", request.Email),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessMessage(c, http.StatusCreated, "OTP sent successfully")
}

// SendOTP handles login OTP requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.authUC.RequestLoginOTP(c.Request().Context(), request.Email); err != nil {
		logger.Warn("Send OTP failed",
			logger.String("email", request.Email),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessMessage(c, http.StatusOK, "OTP sent successfully")
}

// VerifyOTP handles OTP verification requests and returns the session token
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), request.Email, request.OTP)
	if err != nil {
		logger.Warn("OTP verification failed",
			logger.String("email", request.Email),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Login is a fallback for clients still posting to /login
func (h *AuthHandler) Login(c echo.Context) error {
	return utils.SuccessMessage(c, http.StatusOK, "Login endpoint active. Use /send-otp instead.")
}
