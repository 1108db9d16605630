package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.COM  "))
	assert.Equal(t, "player@example.com", NormalizeEmail("Player@Example.Com"))
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"user.name+tag@example.co.uk",
		"x@sub.domain.io",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"no-at.example.com",
		"two@@example.com",
		"a@b@c.com",
		"@example.com",
		"user@",
		"user@nodot",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.ErrorIs(t, ValidateEmail(email), domerrors.ErrInvalidEmail, email)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, ValidatePasswordStrength("Abcdef1!"))
	require.NoError(t, ValidatePasswordStrength("Str0ng&Longer"))

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab1!", "at least 8 characters"},
		{"no uppercase", "abcdef1!", "uppercase"},
		{"no lowercase", "ABCDEF1!", "lowercase"},
		{"no digit", "Abcdefg!", "digit"},
		{"no special", "Abcdefg1", "special"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			require.ErrorIs(t, err, domerrors.ErrWeakPassword)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidatePasswordStrength_FirstViolationWins(t *testing.T) {
	// Short AND missing classes: length is reported first.
	err := ValidatePasswordStrength("ab")
	require.ErrorIs(t, err, domerrors.ErrWeakPassword)
	assert.Contains(t, err.Error(), "at least 8 characters")

	// Full length but missing both cases: uppercase is reported first.
	err = ValidatePasswordStrength("12345678")
	require.ErrorIs(t, err, domerrors.ErrWeakPassword)
	assert.Contains(t, err.Error(), "uppercase")
}

func TestValidateGamerTag(t *testing.T) {
	valid := []string{"abc", "Player1", "under_score", "ABC123_xyz", "a1_", "x2345678901234567890"}
	for _, tag := range valid {
		assert.NoError(t, ValidateGamerTag(tag), tag)
	}

	invalid := []string{"", "ab", "x234567890123456789012", "has space", "dash-ed", "ünïcode", "semi;colon"}
	for _, tag := range invalid {
		assert.ErrorIs(t, ValidateGamerTag(tag), domerrors.ErrInvalidGamerTag, tag)
	}
}
