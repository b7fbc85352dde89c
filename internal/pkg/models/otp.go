package models

import (
	"time"
)

// OTP represents a one-time password for email authentication. Code and
// ExpiresAt travel together: the pair is stored and cleared as one value.
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the OTP is past its expiry at the given instant.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
