package security

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/playshelf/playshelf/internal/application/ports"
)

// tokenBytes is the raw entropy per token: 32 bytes = 256 bits, double the
// 128-bit floor.
const tokenBytes = 32

// RandomTokenGenerator implements ports.TokenGenerator with crypto/rand
// and URL-safe base64. Tokens are opaque; nothing is encoded in them.
type RandomTokenGenerator struct{}

// NewRandomTokenGenerator returns the generator.
func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// Generate returns a fresh unguessable token.
func (g *RandomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

var _ ports.TokenGenerator = (*RandomTokenGenerator)(nil)
