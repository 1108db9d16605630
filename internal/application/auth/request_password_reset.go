package auth

import (
	"context"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
)

// DefaultResetTokenTTL is the window during which a reset token is valid.
const DefaultResetTokenTTL = time.Hour

// RequestPasswordResetInput is the email the reset link should go to.
type RequestPasswordResetInput struct {
	Email string
}

// RequestPasswordResetResult reports only whether a dispatch was attempted
// and apparently succeeded.
type RequestPasswordResetResult struct {
	Dispatched bool
}

// RequestPasswordReset attaches a fresh reset token to the account and
// notifies the user. Every failure mode (malformed email, unknown email,
// store trouble, notifier failure) collapses into Dispatched=false with no
// distinguishing error, so callers present the same message regardless.
type RequestPasswordReset struct {
	store    ports.UserStore
	tokens   ports.TokenGenerator
	notifier ports.Notifier
	resetTTL time.Duration
}

// NewRequestPasswordReset builds the use case. resetTTL <= 0 falls back to
// the 1-hour default.
func NewRequestPasswordReset(store ports.UserStore, tokens ports.TokenGenerator, notifier ports.Notifier, resetTTL time.Duration) *RequestPasswordReset {
	if resetTTL <= 0 {
		resetTTL = DefaultResetTokenTTL
	}
	return &RequestPasswordReset{store: store, tokens: tokens, notifier: notifier, resetTTL: resetTTL}
}

// Execute never returns a typed failure. A new request overwrites any
// prior outstanding reset token for the account.
func (uc *RequestPasswordReset) Execute(ctx context.Context, input RequestPasswordResetInput) (*RequestPasswordResetResult, error) {
	email := NormalizeEmail(input.Email)
	if err := ValidateEmail(email); err != nil {
		return &RequestPasswordResetResult{}, nil
	}

	user, err := uc.store.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return &RequestPasswordResetResult{}, nil
	}

	token, err := uc.tokens.Generate()
	if err != nil {
		return &RequestPasswordResetResult{}, nil
	}
	now := time.Now()
	user.SetResetToken(token, now.Add(uc.resetTTL))
	user.Touch(now)
	if err := uc.store.Update(ctx, user); err != nil {
		return &RequestPasswordResetResult{}, nil
	}

	if err := uc.notifier.SendPasswordResetEmail(ctx, email, token); err != nil {
		return &RequestPasswordResetResult{}, nil
	}
	return &RequestPasswordResetResult{Dispatched: true}, nil
}
