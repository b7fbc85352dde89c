package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prasetya/catatan/internal/pkg/constants"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/services/auth"
)

// StoreOTP stores the OTP pair for its owner, overwriting any previous
// pair. The key TTL matches the expiry so stale codes vanish on their own.
func (r *UserRepo) StoreOTP(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Email)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetOTP retrieves the current OTP pair for the email
func (r *UserRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// ClearOTP removes the OTP pair for the email. Code and expiry always go
// together.
func (r *UserRepo) ClearOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear OTP in Redis: %w", err)
	}
	return nil
}
