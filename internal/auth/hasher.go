// Package auth holds the password digest and session token primitives used by
// the credential flows.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/nirmalvora/padosee-server/internal/metrics"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for stored digests.
const DefaultCost = 10

// ErrEmptySecret is returned by Hash for an empty plaintext.
var ErrEmptySecret = errors.New("empty secret")

// BcryptHasher produces salted bcrypt digests. The salt is generated per call
// and encoded into the digest, so the same plaintext hashes differently each time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher at cost, or DefaultCost when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted digest of plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptySecret
	}

	start := time.Now()
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("generate digest: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is (false, nil);
// an error means the digest itself could not be used.
func (h *BcryptHasher) Verify(plaintext, digest string) (bool, error) {
	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	metrics.PasswordHashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare digest: %w", err)
	}
}
