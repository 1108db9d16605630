package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", SanitizeEmail("  A@B.COM  "))
	assert.Equal(t, "", SanitizeEmail(strings.Repeat("a", MaxEmailLength)+"@b.com"))
}

func TestSanitizePassword(t *testing.T) {
	assert.Equal(t, "Abcdef1!", SanitizePassword(" Abcdef1! "))
	assert.Equal(t, "", SanitizePassword(strings.Repeat("x", MaxPasswordLength+1)))
}

func TestTruncateToken(t *testing.T) {
	assert.Equal(t, "short", TruncateToken("short"))
	long := strings.Repeat("t", MaxTokenLength+100)
	assert.Len(t, TruncateToken(long), MaxTokenLength)
}
