package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/playshelf/playshelf/internal/domain"
)

const (
	createSessionSQL         = `INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	getSessionSQL            = `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1`
	deleteSessionSQL         = `DELETE FROM sessions WHERE token = $1`
	deleteExpiredSessionsSQL = `DELETE FROM sessions WHERE expires_at <= NOW()`
)

// CreateSession persists a new session.
func (s *Store) CreateSession(ctx context.Context, session *domain.Session) error {
	_, err := s.pool.Exec(ctx, createSessionSQL,
		session.Token, session.UserID.UUID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession returns the session for the token, or nil. Expiry is the
// caller's wall-clock check; the row is returned as stored.
func (s *Store) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	var (
		session domain.Session
		userID  uuid.UUID
	)
	err := s.pool.QueryRow(ctx, getSessionSQL, token).
		Scan(&session.Token, &userID, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	session.UserID = domain.NewUserID(userID)
	return &session, nil
}

// DeleteSession removes the session for the token.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, deleteSessionSQL, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions drops every session past its expiry.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteExpiredSessionsSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
