// Package postgres implements the UserStore on pgx. Uniqueness of email
// and gamer tag is enforced by the database's unique constraints, so
// concurrent inserts race safely: one wins, the rest surface the matching
// already-exists error.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playshelf/playshelf/internal/application/ports"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL,
	gamer_tag TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	is_verified BOOLEAN NOT NULL DEFAULT FALSE,
	verification_token TEXT NOT NULL DEFAULT '',
	reset_token TEXT NOT NULL DEFAULT '',
	reset_token_expires_at TIMESTAMPTZ,
	preferences JSONB,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT users_email_key UNIQUE (email),
	CONSTRAINT users_gamer_tag_key UNIQUE (gamer_tag)
);

CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at);
`

// Store implements ports.UserStore on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps the pool. The pool's lifecycle belongs to the caller.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

var _ ports.UserStore = (*Store)(nil)
