// Package password implements the credential verifier: a salted one-way
// transform over plaintext passwords backed by bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/notekeeper/server/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)

// Hasher hashes and verifies passwords. It keeps no state beyond the cost
// factor and performs no I/O.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the default bcrypt cost.
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted hash of plaintext. Two calls with the same input
// yield different hashes; Verify accepts both.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext is the input that produced hash. The
// underlying comparison is constant-time. Malformed hash input returns
// false rather than an error.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
