package auth

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

func TestCreateAccount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	result, err := env.createAccount.Execute(ctx, CreateAccountInput{
		Email:    "A@B.com",
		Password: "Abcdef1!",
		GamerTag: "Player1",
	})
	require.NoError(t, err)
	require.NotNil(t, result.User)

	assert.Equal(t, "a@b.com", result.User.Email, "email is stored normalized")
	assert.Equal(t, "Player1", result.User.GamerTag)
	assert.False(t, result.User.IsVerified)
	assert.NotEmpty(t, result.User.VerificationToken)
	assert.NotEqual(t, "Abcdef1!", result.User.PasswordHash)
	assert.True(t, result.VerificationDispatched)

	sent := env.notifier.lastVerification()
	assert.Equal(t, "a@b.com", sent.Email)
	assert.Equal(t, result.User.VerificationToken, sent.Token)
}

func TestCreateAccount_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateAccountInput
		wantErr error
	}{
		{"bad email", CreateAccountInput{Email: "not-an-email", Password: "Abcdef1!", GamerTag: "Player1"}, domerrors.ErrInvalidEmail},
		{"weak password", CreateAccountInput{Email: "a@b.com", Password: "weak", GamerTag: "Player1"}, domerrors.ErrWeakPassword},
		{"bad gamer tag", CreateAccountInput{Email: "a@b.com", Password: "Abcdef1!", GamerTag: "x"}, domerrors.ErrInvalidGamerTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.createAccount.Execute(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAccount_Duplicates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.mustSignup(ctx, "a@b.com", "Abcdef1!", "Player1")

	_, err := env.createAccount.Execute(ctx, CreateAccountInput{
		Email:    "A@B.COM", // same email after normalization
		Password: "Abcdef1!",
		GamerTag: "Player2",
	})
	assert.ErrorIs(t, err, domerrors.ErrEmailAlreadyExists)

	_, err = env.createAccount.Execute(ctx, CreateAccountInput{
		Email:    "other@b.com",
		Password: "Abcdef1!",
		GamerTag: "Player1",
	})
	assert.ErrorIs(t, err, domerrors.ErrGamerTagAlreadyExists)
}

func TestCreateAccount_ConcurrentDuplicates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	const workers = 16
	var successes atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := env.createAccount.Execute(ctx, CreateAccountInput{
				Email:    "race@b.com",
				Password: "Abcdef1!",
				GamerTag: "Racer1",
			})
			if err == nil {
				successes.Add(1)
			} else {
				// Pre-check or insert, either way an already-exists error.
				assert.True(t,
					errors.Is(err, domerrors.ErrEmailAlreadyExists) ||
						errors.Is(err, domerrors.ErrGamerTagAlreadyExists),
					"unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), successes.Load(), "exactly one signup wins")
	user, err := env.store.FindByEmail(ctx, "race@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestCreateAccount_NotifierFailureDoesNotFailSignup(t *testing.T) {
	env := newTestEnv()
	env.notifier.failWith = errors.New("smtp down")
	ctx := context.Background()

	result, err := env.createAccount.Execute(ctx, CreateAccountInput{
		Email:    "a@b.com",
		Password: "Abcdef1!",
		GamerTag: "Player1",
	})
	require.NoError(t, err)
	assert.False(t, result.VerificationDispatched)

	// The account exists and can still be verified out of band.
	user, err := env.store.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.VerificationToken)
}
