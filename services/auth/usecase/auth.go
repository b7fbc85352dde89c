package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/prasetya/catatan/internal/pkg/apperrors"
	jwtpkg "github.com/prasetya/catatan/internal/pkg/jwt"
	"github.com/prasetya/catatan/internal/pkg/logger"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/internal/utils"
	"github.com/prasetya/catatan/services/auth"
)

// Signup registers a new account and sends the first OTP. The account is
// created even if OTP delivery later fails; the client resends via
// send-otp.
func (u *AuthUC) Signup(ctx context.Context, req *models.SignupRequest) error {
	if req.Username == "" || req.Email == "" || req.DateOfBirth == "" {
		return apperrors.NewValidation("All fields are required.")
	}

	// Email uniqueness check
	_, err := u.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return apperrors.NewConflict("Email is already registered.")
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return apperrors.NewStore(err)
	}

	user := &models.User{
		Email:       req.Email,
		Username:    req.Username,
		DateOfBirth: req.DateOfBirth,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return apperrors.NewStore(err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))

	return u.issueOTP(ctx, req.Email)
}

// RequestLoginOTP sends a fresh login OTP to an existing account,
// overwriting any previous code.
func (u *AuthUC) RequestLoginOTP(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.NewValidation("Email is required.")
	}

	_, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return apperrors.NewNotFound("User not found. Please sign up.")
		}
		return apperrors.NewStore(err)
	}

	return u.issueOTP(ctx, email)
}

// VerifyOTP checks the submitted code against the stored pair and issues
// a session token. Unknown email, wrong code and expired code are
// indistinguishable to the caller.
func (u *AuthUC) VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	if email == "" || code == "" {
		return nil, apperrors.NewValidation("Email and OTP are required.")
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperrors.NewOTPInvalid()
		}
		return nil, apperrors.NewStore(err)
	}

	otp, err := u.userRepo.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) {
			return nil, apperrors.NewOTPInvalid()
		}
		return nil, apperrors.NewStore(err)
	}

	if otp.Code != code || otp.Expired(time.Now()) {
		return nil, apperrors.NewOTPInvalid()
	}

	// Single use: the pair is cleared before the token is returned
	if err := u.userRepo.ClearOTP(ctx, email); err != nil {
		return nil, apperrors.NewStore(err)
	}

	token, _, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg.JWT)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	logger.Info("OTP verified",
		logger.String("user_id", user.ID.String()),
		logger.String("email", user.Email))

	return &models.AuthResponse{
		Message: "OTP verified successfully",
		Token:   token,
		User:    user.Public(),
	}, nil
}

// issueOTP generates a fresh code, stores it with its expiry and then
// dispatches it. The stored pair is intentionally not rolled back on
// delivery failure: it stays live until overwritten or expired.
func (u *AuthUC) issueOTP(ctx context.Context, email string) error {
	code, err := utils.GenerateOTP()
	if err != nil {
		return apperrors.NewInternal(err)
	}

	now := time.Now()
	otp := &models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.Expiration) * time.Minute),
	}

	if err := u.userRepo.StoreOTP(ctx, otp); err != nil {
		return apperrors.NewStore(err)
	}

	if err := u.mailer.SendOTP(email, code); err != nil {
		logger.Error("Failed to dispatch OTP email",
			logger.String("email", email),
			logger.Err(err))
		return err
	}

	logger.Info("OTP issued", logger.String("email", email))
	return nil
}
