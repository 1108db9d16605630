package ports

import "context"

// Notifier delivers verification and reset links out-of-band. A returned
// failure must never corrupt account state already persisted; callers
// decide whether to surface or swallow it.
type Notifier interface {
	SendVerificationEmail(ctx context.Context, email, token string) error
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}
