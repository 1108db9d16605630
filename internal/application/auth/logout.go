package auth

import (
	"context"

	"github.com/playshelf/playshelf/internal/application/ports"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// LogoutInput is the session token to revoke.
type LogoutInput struct {
	SessionToken string
}

// LogoutResult is empty on success.
type LogoutResult struct{}

// Logout deletes the session record. A second call with the same token
// fails with ErrInvalidSession; callers should read that as "already
// logged out", not a hard error.
type Logout struct {
	store ports.UserStore
}

// NewLogout builds the use case.
func NewLogout(store ports.UserStore) *Logout {
	return &Logout{store: store}
}

// Execute revokes the session.
func (uc *Logout) Execute(ctx context.Context, input LogoutInput) (*LogoutResult, error) {
	session, err := uc.store.GetSession(ctx, input.SessionToken)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domerrors.ErrInvalidSession
	}
	if err := uc.store.DeleteSession(ctx, session.Token); err != nil {
		return nil, err
	}
	return &LogoutResult{}, nil
}
