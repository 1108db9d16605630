package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// Full account lifecycle: signup, verify, sign in, reset the password,
// sign back in with the new one, sign out.
func TestAccountLifecycle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	signup, err := env.createAccount.Execute(ctx, CreateAccountInput{
		Email:    "a@b.com",
		Password: "Abcdef1!",
		GamerTag: "Player1",
	})
	require.NoError(t, err)
	require.True(t, signup.VerificationDispatched)

	verified, err := env.verifyAccount.Execute(ctx, VerifyAccountInput{
		Token: env.notifier.lastVerification().Token,
	})
	require.NoError(t, err)
	require.True(t, verified.User.IsVerified)

	login, err := env.login.Execute(ctx, LoginInput{
		Email:               "a@b.com",
		Password:            "Abcdef1!",
		RequireVerification: true,
	})
	require.NoError(t, err)

	me, err := env.sessions.Execute(ctx, login.Session.Token)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.Equal(t, "Player1", me.GamerTag)

	reset, err := env.requestPasswordReset.Execute(ctx, RequestPasswordResetInput{Email: "a@b.com"})
	require.NoError(t, err)
	require.True(t, reset.Dispatched)

	_, err = env.resetPassword.Execute(ctx, ResetPasswordInput{
		Token:       env.notifier.lastReset().Token,
		NewPassword: "Fresh9#pw",
	})
	require.NoError(t, err)

	_, err = env.login.Execute(ctx, LoginInput{Email: "a@b.com", Password: "Abcdef1!"})
	assert.ErrorIs(t, err, domerrors.ErrInvalidCredentials)

	relogin, err := env.login.Execute(ctx, LoginInput{
		Email:               "a@b.com",
		Password:            "Fresh9#pw",
		RequireVerification: true,
	})
	require.NoError(t, err)

	_, err = env.logout.Execute(ctx, LogoutInput{SessionToken: relogin.Session.Token})
	require.NoError(t, err)

	gone, err := env.sessions.Execute(ctx, relogin.Session.Token)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
