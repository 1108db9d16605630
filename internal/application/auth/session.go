package auth

import (
	"context"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
)

// GetUserFromSession resolves a session token to its account. Missing and
// expired sessions both resolve to nil without a typed failure; an expired
// session found during lookup is deleted lazily.
type GetUserFromSession struct {
	store ports.UserStore
}

// NewGetUserFromSession builds the use case.
func NewGetUserFromSession(store ports.UserStore) *GetUserFromSession {
	return &GetUserFromSession{store: store}
}

// Execute returns (nil, nil) when the token does not resolve to a live
// session.
func (uc *GetUserFromSession) Execute(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	session, err := uc.store.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.IsExpired(time.Now()) {
		_ = uc.store.DeleteSession(ctx, session.Token)
		return nil, nil
	}
	return uc.store.FindByID(ctx, session.UserID)
}
