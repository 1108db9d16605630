package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// CreateAccountInput carries the signup form values.
type CreateAccountInput struct {
	Email    string
	Password string
	GamerTag string
}

// CreateAccountResult is the created account plus whether the verification
// email was actually dispatched. Notifier failure does not fail signup.
type CreateAccountResult struct {
	User                   *domain.User
	VerificationDispatched bool
}

// CreateAccount registers a new account: validates the inputs, hashes the
// password, persists the account unverified with a fresh verification
// token, and asks the notifier to deliver the verification link.
type CreateAccount struct {
	store    ports.UserStore
	hasher   ports.PasswordHasher
	tokens   ports.TokenGenerator
	notifier ports.Notifier
}

// NewCreateAccount builds the use case.
func NewCreateAccount(store ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenGenerator, notifier ports.Notifier) *CreateAccount {
	return &CreateAccount{store: store, hasher: hasher, tokens: tokens, notifier: notifier}
}

// Execute runs the signup flow. The pre-insert duplicate lookups give the
// caller a precise error early; the store's unique constraints remain the
// authority under concurrent signups, so Insert can still return an
// already-exists error.
func (uc *CreateAccount) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountResult, error) {
	email := NormalizeEmail(input.Email)
	gamerTag := strings.TrimSpace(input.GamerTag)

	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	if err := ValidateGamerTag(gamerTag); err != nil {
		return nil, err
	}

	if existing, err := uc.store.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrEmailAlreadyExists
	}
	if existing, err := uc.store.FindByGamerTag(ctx, gamerTag); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrGamerTagAlreadyExists
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	verificationToken, err := uc.tokens.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:                domain.NewUserID(uuid.New()),
		Email:             email,
		GamerTag:          gamerTag,
		PasswordHash:      hash,
		IsVerified:        false,
		VerificationToken: verificationToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.store.Insert(ctx, user); err != nil {
		return nil, err
	}

	dispatched := uc.notifier.SendVerificationEmail(ctx, email, verificationToken) == nil
	return &CreateAccountResult{User: user, VerificationDispatched: dispatched}, nil
}
