package auth

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/playshelf/playshelf/internal/infrastructure/persistence/memory"
	"github.com/playshelf/playshelf/internal/infrastructure/security"
)

// fakeNotifier records dispatches and can be told to fail.
type fakeNotifier struct {
	mu            sync.Mutex
	failWith      error
	verifications []sentEmail
	resets        []sentEmail
}

type sentEmail struct {
	Email string
	Token string
}

func (n *fakeNotifier) SendVerificationEmail(ctx context.Context, email, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failWith != nil {
		return n.failWith
	}
	n.verifications = append(n.verifications, sentEmail{Email: email, Token: token})
	return nil
}

func (n *fakeNotifier) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failWith != nil {
		return n.failWith
	}
	n.resets = append(n.resets, sentEmail{Email: email, Token: token})
	return nil
}

func (n *fakeNotifier) lastVerification() sentEmail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.verifications[len(n.verifications)-1]
}

func (n *fakeNotifier) lastReset() sentEmail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.resets[len(n.resets)-1]
}

// testEnv wires the use cases against the in-memory store with the
// cheapest bcrypt cost.
type testEnv struct {
	store    *memory.Store
	hasher   *security.BcryptHasher
	tokens   *security.RandomTokenGenerator
	notifier *fakeNotifier

	createAccount        *CreateAccount
	login                *Login
	logout               *Logout
	verifyAccount        *VerifyAccount
	requestPasswordReset *RequestPasswordReset
	resetPassword        *ResetPassword
	sessions             *GetUserFromSession
	updatePreferences    *UpdatePreferences
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := security.NewRandomTokenGenerator()
	notifier := &fakeNotifier{}
	return &testEnv{
		store:                store,
		hasher:               hasher,
		tokens:               tokens,
		notifier:             notifier,
		createAccount:        NewCreateAccount(store, hasher, tokens, notifier),
		login:                NewLogin(store, hasher, tokens, 0),
		logout:               NewLogout(store),
		verifyAccount:        NewVerifyAccount(store),
		requestPasswordReset: NewRequestPasswordReset(store, tokens, notifier, 0),
		resetPassword:        NewResetPassword(store, hasher),
		sessions:             NewGetUserFromSession(store),
		updatePreferences:    NewUpdatePreferences(store),
	}
}

func (e *testEnv) mustSignup(ctx context.Context, email, password, gamerTag string) *CreateAccountResult {
	result, err := e.createAccount.Execute(ctx, CreateAccountInput{
		Email:    email,
		Password: password,
		GamerTag: gamerTag,
	})
	if err != nil {
		panic(err)
	}
	return result
}
