package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpMax bounds the generated code to six decimal digits.
var otpMax = big.NewInt(1000000)

// GenerateOTP produces a uniformly random six-digit numeric code,
// zero-padded.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
