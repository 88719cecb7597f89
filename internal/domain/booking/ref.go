package booking

import (
	"crypto/rand"
	"fmt"
)

// refAlphabet avoids lowercase so refs survive case-insensitive channels
// (phone, email subject lines).
const (
	refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	refLength   = 8
)

// NewRef generates a short human-readable booking reference. Uniqueness is
// enforced by the store; callers retry on a duplicate.
func NewRef() (string, error) {
	buf := make([]byte, refLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate booking ref: %w", err)
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return string(buf), nil
}
