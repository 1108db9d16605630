package auth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// Password strength rules, checked in this order so the first violation is
// the one surfaced.
const MinPasswordLength = 8

var gamerTagRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// NormalizeEmail trims and lowercases; emails are compared and stored in
// this form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail applies the structural check: exactly one @, at least one
// dot in the domain part, no whitespace.
func ValidateEmail(email string) error {
	if email == "" || strings.ContainsAny(email, " \t\n") {
		return domerrors.ErrInvalidEmail
	}
	at := strings.Count(email, "@")
	if at != 1 {
		return domerrors.ErrInvalidEmail
	}
	local, dom, _ := strings.Cut(email, "@")
	if local == "" || dom == "" || !strings.Contains(dom, ".") {
		return domerrors.ErrInvalidEmail
	}
	return nil
}

// ValidatePasswordStrength enforces length >= 8 plus at least one
// uppercase, lowercase, digit, and special character. Violations are
// reported in that order, wrapped around ErrWeakPassword.
func ValidatePasswordStrength(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", domerrors.ErrWeakPassword, MinPasswordLength)
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	switch {
	case !upper:
		return fmt.Errorf("%w: must contain an uppercase letter", domerrors.ErrWeakPassword)
	case !lower:
		return fmt.Errorf("%w: must contain a lowercase letter", domerrors.ErrWeakPassword)
	case !digit:
		return fmt.Errorf("%w: must contain a digit", domerrors.ErrWeakPassword)
	case !special:
		return fmt.Errorf("%w: must contain a special character", domerrors.ErrWeakPassword)
	}
	return nil
}

// ValidateGamerTag enforces the 3-20 alphanumeric-plus-underscore rule.
func ValidateGamerTag(gamerTag string) error {
	if !gamerTagRegex.MatchString(gamerTag) {
		return domerrors.ErrInvalidGamerTag
	}
	return nil
}
