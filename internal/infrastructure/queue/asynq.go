// Package queue delivers verification and reset emails through Asynq so a
// slow mail hop never blocks the request path. When Redis is not
// configured, the log notifier delivers inline.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/playshelf/playshelf/internal/application/ports"
)

const (
	TypeSendVerification  = "email:verification"
	TypeSendPasswordReset = "email:password_reset"
)

// AsynqNotifier implements ports.Notifier by enqueueing email tasks.
// An enqueue failure is the dispatch failure the auth service reports.
type AsynqNotifier struct {
	client  *asynq.Client
	baseURL string
	log     zerolog.Logger
}

// NewAsynqNotifier creates the notifier. baseURL is the public URL links
// are built against.
func NewAsynqNotifier(redisOpt asynq.RedisClientOpt, baseURL string, log zerolog.Logger) *AsynqNotifier {
	return &AsynqNotifier{client: asynq.NewClient(redisOpt), baseURL: baseURL, log: log}
}

// Close releases the underlying client.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}

type emailPayload struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// SendVerificationEmail enqueues the verification email task.
func (n *AsynqNotifier) SendVerificationEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", n.baseURL, token)
	return n.enqueue(ctx, TypeSendVerification, email, link)
}

// SendPasswordResetEmail enqueues the password reset email task.
func (n *AsynqNotifier) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", n.baseURL, token)
	return n.enqueue(ctx, TypeSendPasswordReset, email, link)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, taskType, email, link string) error {
	payload, _ := json.Marshal(emailPayload{Email: email, Link: link})
	task := asynq.NewTask(taskType, payload)
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		n.log.Warn().Err(err).Str("task", taskType).Str("email", email).Msg("enqueue email failed")
		return err
	}
	return nil
}

var _ ports.Notifier = (*AsynqNotifier)(nil)
