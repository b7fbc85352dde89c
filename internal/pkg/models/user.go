package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Email is the unique login key;
// there are no passwords, authentication is OTP-only.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Username    string    `json:"username" db:"username"`
	DateOfBirth string    `json:"date_of_birth" db:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PublicUser is the projection of a user returned to clients after
// successful authentication.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

// SignupRequest represents a request to register a new account
type SignupRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

// LoginRequest represents a request to receive a login OTP
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
}

// VerifyRequest represents a request to verify an OTP
type VerifyRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// AuthResponse represents the response after successful OTP verification
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}
