// Package apperrors defines the error taxonomy shared by every service.
// Each AppError carries the HTTP status to respond with and a stable
// machine-readable code so clients never have to match on message text.
package apperrors

import (
	"errors"
	"net/http"
)

// Stable error codes exposed in the API contract.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeEmailExists  = "EMAIL_EXISTS"
	CodeUserNotFound = "USER_NOT_FOUND"
	CodeOTPInvalid   = "OTP_INVALID"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeDelivery     = "DELIVERY_FAILED"
	CodeStore        = "STORE_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is a terminal per-request error: it maps directly to one HTTP
// response and is never retried server-side.
type AppError struct {
	Status  int
	Code    string
	Message string
	Base    error
}

func (e *AppError) Error() string {
	if e.Base != nil {
		return e.Message + ": " + e.Base.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Base
}

// NewValidation reports missing or malformed input.
func NewValidation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

// NewConflict reports a duplicate email at signup.
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: CodeEmailExists, Message: message}
}

// NewNotFound reports an unknown user on login OTP requests.
func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeUserNotFound, Message: message}
}

// NewOTPInvalid reports a failed OTP verification. The message is the
// same for unknown email, wrong code and expired code.
func NewOTPInvalid() *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeOTPInvalid, Message: "Invalid or expired OTP."}
}

// NewUnauthorized reports a missing or invalid session token.
func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// NewDelivery reports a mail channel failure.
func NewDelivery(base error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeDelivery, Message: "Failed to send OTP email.", Base: base}
}

// NewStore reports a persistence failure.
func NewStore(base error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeStore, Message: "Internal Server Error", Base: base}
}

// NewInternal wraps any other failure.
func NewInternal(base error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal Server Error", Base: base}
}

// From extracts an AppError from err, wrapping unknown errors as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
