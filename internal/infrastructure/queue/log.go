package queue

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/playshelf/playshelf/internal/application/ports"
)

// LogNotifier delivers links straight to the log. Used when Redis/Asynq
// is not configured.
type LogNotifier struct {
	baseURL string
	log     zerolog.Logger
}

// NewLogNotifier returns the notifier.
func NewLogNotifier(baseURL string, log zerolog.Logger) *LogNotifier {
	return &LogNotifier{baseURL: baseURL, log: log}
}

// SendVerificationEmail logs the verification link.
func (n *LogNotifier) SendVerificationEmail(ctx context.Context, email, token string) error {
	n.log.Info().
		Str("email", email).
		Str("link", fmt.Sprintf("%s/verify-email?token=%s", n.baseURL, token)).
		Msg("verification email (log only)")
	return nil
}

// SendPasswordResetEmail logs the reset link.
func (n *LogNotifier) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	n.log.Info().
		Str("email", email).
		Str("link", fmt.Sprintf("%s/reset-password?token=%s", n.baseURL, token)).
		Msg("password reset email (log only)")
	return nil
}

var _ ports.Notifier = (*LogNotifier)(nil)
