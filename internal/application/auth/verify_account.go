package auth

import (
	"context"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// VerifyAccountInput is the token from the verification link.
type VerifyAccountInput struct {
	Token string
}

// VerifyAccountResult is the verified account.
type VerifyAccountResult struct {
	User *domain.User
}

// VerifyAccount consumes a verification token: marks the account verified
// and clears the token so the link cannot be replayed.
type VerifyAccount struct {
	store ports.UserStore
}

// NewVerifyAccount builds the use case.
func NewVerifyAccount(store ports.UserStore) *VerifyAccount {
	return &VerifyAccount{store: store}
}

// Execute resolves the token and verifies the account. An unknown token
// and a stale link for an already-verified account fail identically.
func (uc *VerifyAccount) Execute(ctx context.Context, input VerifyAccountInput) (*VerifyAccountResult, error) {
	if input.Token == "" {
		return nil, domerrors.ErrInvalidToken
	}
	user, err := uc.store.FindByVerificationToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsVerified {
		return nil, domerrors.ErrInvalidToken
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.Touch(time.Now())
	if err := uc.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return &VerifyAccountResult{User: user}, nil
}
