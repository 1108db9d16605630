package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

func TestLogin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	signup := env.mustSignup(ctx, "a@b.com", "Abcdef1!", "Player1")

	result, err := env.login.Execute(ctx, LoginInput{Email: "A@B.COM", Password: "Abcdef1!"})
	require.NoError(t, err)
	require.NotNil(t, result.Session)
	assert.Equal(t, signup.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Session.Token)
	assert.WithinDuration(t, time.Now().Add(domain.DefaultSessionTTL), result.Session.ExpiresAt, time.Minute)

	stored, err := env.store.GetSession(ctx, result.Session.Token)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, signup.User.ID, stored.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.mustSignup(ctx, "a@b.com", "Abcdef1!", "Player1")

	// Unknown email and wrong password are indistinguishable.
	_, err := env.login.Execute(ctx, LoginInput{Email: "nobody@b.com", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, domerrors.ErrInvalidCredentials)

	_, err = env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Wrong1!pass"})
	assert.ErrorIs(t, err, domerrors.ErrInvalidCredentials)
}

func TestLogin_RequireVerification(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	signup := env.mustSignup(ctx, "a@b.com", "Abcdef1!", "Player1")

	// Unverified + correct credentials: blocked with the verification error,
	// proving credentials were checked first.
	_, err := env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!", RequireVerification: true})
	assert.ErrorIs(t, err, domerrors.ErrAccountNotVerified)

	// Unverified + wrong password: credentials error, not verification.
	_, err = env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Wrong1!pass", RequireVerification: true})
	assert.ErrorIs(t, err, domerrors.ErrInvalidCredentials)

	// Without the flag the unverified account signs in.
	_, err = env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!"})
	assert.NoError(t, err)

	// Verified account passes the gate.
	_, err = env.verifyAccount.Execute(ctx, VerifyAccountInput{Token: signup.User.VerificationToken})
	require.NoError(t, err)
	_, err = env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!", RequireVerification: true})
	assert.NoError(t, err)
}

func TestLogin_ConcurrentSessionsAllowed(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.mustSignup(ctx, "a@b.com", "Abcdef1!", "Player1")

	first, err := env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!"})
	require.NoError(t, err)
	second, err := env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Session.Token, second.Session.Token)

	// The first session survives the second login.
	user, err := env.sessions.Execute(ctx, first.Session.Token)
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLogin_PurgesExpiredSessions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	signup := env.mustSignup(ctx, "a@b.com", "Abcdef1!", "Player1")

	expired := domain.NewSession("stale-token", signup.User.ID, time.Now().Add(-8*24*time.Hour), domain.DefaultSessionTTL)
	require.NoError(t, env.store.CreateSession(ctx, expired))

	_, err := env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!"})
	require.NoError(t, err)

	stale, err := env.store.GetSession(ctx, "stale-token")
	require.NoError(t, err)
	assert.Nil(t, stale, "expired session is purged on login")
}
