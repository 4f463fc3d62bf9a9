// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = 12

// Hasher hashes and verifies passwords with bcrypt. The cost is injectable so
// tests can use bcrypt.MinCost.
type Hasher struct{ cost int }

// NewHasher returns a Hasher with the production cost.
func NewHasher() *Hasher { return &Hasher{cost: DefaultCost} }

// NewHasherWithCost returns a Hasher with a custom cost (tests only).
func NewHasherWithCost(cost int) *Hasher { return &Hasher{cost: cost} }

// Hash returns the bcrypt hash of password. The salt is embedded in the output.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead
		return "", fmt.Errorf("crypto: password longer than 72 bytes")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("crypto: hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether password matches the stored bcrypt hash.
// The comparison is constant-time inside bcrypt.
func (h *Hasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
