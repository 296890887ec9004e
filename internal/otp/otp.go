// Package otp generates one-time codes for email verification.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// Generate returns a 6-digit numeric code, uniform over [100000, 999999].
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
