package ports

import (
	"context"

	"github.com/playshelf/playshelf/internal/domain"
)

// UserStore defines persistence for accounts, their outstanding
// verification/reset tokens, and active sessions. Find methods return
// (nil, nil) when no record matches. Every call is atomic; Insert enforces
// the email and gamer tag uniqueness constraints at the write boundary and
// returns errors.ErrEmailAlreadyExists / errors.ErrGamerTagAlreadyExists
// on conflict, so concurrent duplicate creations resolve to exactly one
// success.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByGamerTag(ctx context.Context, gamerTag string) (*domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error

	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
