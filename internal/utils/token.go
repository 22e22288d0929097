package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// verificationTokenBytes is the entropy of an email verification token.
// 32 random bytes make guessing within any realistic verification window
// infeasible, so no uniqueness retry loop is needed.
const verificationTokenBytes = 32

// GenerateVerificationToken returns a new opaque single-use token for
// email verification.
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
