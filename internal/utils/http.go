package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/internal/pkg/apperrors"
)

// MessageResponse is the body of success responses that carry no data
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response. Code is a stable
// machine-readable value; clients must not match on Message text.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// SuccessMessage sends a success response carrying only a message
func SuccessMessage(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponseHandler sends an error response with an explicit status and code
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    code,
	})
}

// AppErrorResponse maps any error to its HTTP response via the apperrors
// taxonomy. Unknown errors become a generic 500.
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperrors.From(err)
	return ErrorResponseHandler(c, appErr.Status, appErr.Code, appErr.Message)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, apperrors.CodeValidation, message)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, apperrors.CodeInternal, message)
}
