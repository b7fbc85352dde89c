package auth

import (
	"context"
	"errors"

	"github.com/prasetya/catatan/internal/pkg/models"
)

// Sentinel errors returned by UserRepo implementations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrOTPNotFound  = errors.New("otp not found")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetya/catatan/services/auth AuthUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetya/catatan/services/auth UserRepo
//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks github.com/prasetya/catatan/internal/pkg/mailer Mailer

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// Signup registers a new account and sends the first OTP
	Signup(ctx context.Context, req *models.SignupRequest) error
	// RequestLoginOTP sends a fresh login OTP to an existing account
	RequestLoginOTP(ctx context.Context, email string) error
	// VerifyOTP checks the code and issues a session token
	VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error)
}

// UserRepo represents the credential store: user records plus the
// volatile OTP pair
type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// handle OTP
	StoreOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, email string) (*models.OTP, error)
	ClearOTP(ctx context.Context, email string) error
}
