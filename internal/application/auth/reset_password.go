package auth

import (
	"context"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// ResetPasswordInput is the token from the reset link plus the
// replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordResult is the account whose password changed.
type ResetPasswordResult struct {
	User *domain.User
}

// ResetPassword completes a reset flow. Token validity (existence, then
// expiry) is checked before password strength, so a weak-password failure
// never reveals whether the token was otherwise live. The token is
// consumed as soon as it passes validity: a weak new password burns it and
// the user must request a fresh link.
type ResetPassword struct {
	store  ports.UserStore
	hasher ports.PasswordHasher
}

// NewResetPassword builds the use case.
func NewResetPassword(store ports.UserStore, hasher ports.PasswordHasher) *ResetPassword {
	return &ResetPassword{store: store, hasher: hasher}
}

// Execute validates, consumes the token, then sets the new password.
func (uc *ResetPassword) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordResult, error) {
	if input.Token == "" {
		return nil, domerrors.ErrInvalidToken
	}
	user, err := uc.store.FindByResetToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ResetTokenExpiresAt == nil {
		return nil, domerrors.ErrInvalidToken
	}
	now := time.Now()
	if now.After(*user.ResetTokenExpiresAt) {
		return nil, domerrors.ErrTokenExpired
	}

	// Consume before strength validation. Single-use wins over
	// convenience: the token is gone even if the new password is rejected.
	user.ClearResetToken()
	user.Touch(now)
	if err := uc.store.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.Touch(time.Now())
	if err := uc.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return &ResetPasswordResult{User: user}, nil
}
