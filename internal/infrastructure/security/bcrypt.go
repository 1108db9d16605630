// Package security provides the credential hasher and the opaque token
// generator.
package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/playshelf/playshelf/internal/application/ports"
)

// DefaultBcryptCost is the fixed work factor. 12 keeps hashing deliberate
// on current hardware; raise it via config as hardware improves.
const DefaultBcryptCost = 12

// BcryptHasher implements ports.PasswordHasher with bcrypt. Salting is
// handled by bcrypt itself; the cost is embedded in the hash so old hashes
// keep verifying after a cost change.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside
// bcrypt's valid range fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of the plaintext.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext matches the stored hash.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
