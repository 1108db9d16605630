package auth

import (
	"context"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// LoginInput carries the credentials plus whether an unverified account
// may sign in.
type LoginInput struct {
	Email               string
	Password            string
	RequireVerification bool
}

// LoginResult is the authenticated account and its fresh session.
type LoginResult struct {
	User    *domain.User
	Session *domain.Session
}

// Login verifies credentials and issues a session. Unknown email and wrong
// password produce the same error so callers cannot enumerate accounts.
type Login struct {
	store      ports.UserStore
	hasher     ports.PasswordHasher
	tokens     ports.TokenGenerator
	sessionTTL time.Duration
}

// NewLogin builds the use case. sessionTTL <= 0 falls back to the 7-day
// default.
func NewLogin(store ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenGenerator, sessionTTL time.Duration) *Login {
	if sessionTTL <= 0 {
		sessionTTL = domain.DefaultSessionTTL
	}
	return &Login{store: store, hasher: hasher, tokens: tokens, sessionTTL: sessionTTL}
}

// Execute authenticates and creates a session. Prior sessions stay valid;
// concurrent sessions per account are allowed.
func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := NormalizeEmail(input.Email)

	user, err := uc.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}

	// Verification is checked only after credentials pass, so this path
	// cannot be used to probe for unverified emails.
	if input.RequireVerification && !user.IsVerified {
		return nil, domerrors.ErrAccountNotVerified
	}

	// Opportunistic housekeeping; login does not depend on it.
	_, _ = uc.store.DeleteExpiredSessions(ctx)

	token, err := uc.tokens.Generate()
	if err != nil {
		return nil, err
	}
	session := domain.NewSession(token, user.ID, time.Now(), uc.sessionTTL)
	if err := uc.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Session: session}, nil
}
