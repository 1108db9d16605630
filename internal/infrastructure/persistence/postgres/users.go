package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

const userColumns = `id, email, gamer_tag, password_hash, is_verified, verification_token, reset_token, reset_token_expires_at, preferences, created_at, updated_at`

const (
	insertUserSQL = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	updateUserSQL = `UPDATE users SET email = $2, gamer_tag = $3, password_hash = $4, is_verified = $5, verification_token = $6, reset_token = $7, reset_token_expires_at = $8, preferences = $9, updated_at = $10 WHERE id = $1`

	findByEmailSQL             = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	findByGamerTagSQL          = `SELECT ` + userColumns + ` FROM users WHERE gamer_tag = $1`
	findByIDSQL                = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	findByVerificationTokenSQL = `SELECT ` + userColumns + ` FROM users WHERE verification_token = $1 AND verification_token <> ''`
	findByResetTokenSQL        = `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1 AND reset_token <> ''`
)

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

// Insert persists a new account. Unique-constraint violations are mapped
// to the matching already-exists sentinel by constraint name.
func (s *Store) Insert(ctx context.Context, user *domain.User) error {
	prefs, err := marshalPreferences(user.Preferences)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, insertUserSQL,
		user.ID.UUID, user.Email, user.GamerTag, user.PasswordHash, user.IsVerified,
		user.VerificationToken, user.ResetToken, user.ResetTokenExpiresAt, prefs,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return domerrors.ErrEmailAlreadyExists
			case "users_gamer_tag_key":
				return domerrors.ErrGamerTagAlreadyExists
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update writes back a mutated account by id.
func (s *Store) Update(ctx context.Context, user *domain.User) error {
	prefs, err := marshalPreferences(user.Preferences)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, updateUserSQL,
		user.ID.UUID, user.Email, user.GamerTag, user.PasswordHash, user.IsVerified,
		user.VerificationToken, user.ResetToken, user.ResetTokenExpiresAt, prefs,
		user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return domerrors.ErrEmailAlreadyExists
			case "users_gamer_tag_key":
				return domerrors.ErrGamerTagAlreadyExists
			}
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user: no row with id %s", user.ID)
	}
	return nil
}

// FindByEmail returns the user with this email, or nil.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findOne(ctx, findByEmailSQL, email)
}

// FindByGamerTag returns the user with this gamer tag, or nil.
func (s *Store) FindByGamerTag(ctx context.Context, gamerTag string) (*domain.User, error) {
	return s.findOne(ctx, findByGamerTagSQL, gamerTag)
}

// FindByID returns the user with this id, or nil.
func (s *Store) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.findOne(ctx, findByIDSQL, id.UUID)
}

// FindByVerificationToken returns the user holding this outstanding
// verification token, or nil.
func (s *Store) FindByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	return s.findOne(ctx, findByVerificationTokenSQL, token)
}

// FindByResetToken returns the user holding this outstanding reset token,
// or nil.
func (s *Store) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	return s.findOne(ctx, findByResetTokenSQL, token)
}

func (s *Store) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := s.pool.QueryRow(ctx, query, arg)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u         domain.User
		id        uuid.UUID
		expiresAt *time.Time
		prefs     []byte
	)
	err := row.Scan(&id, &u.Email, &u.GamerTag, &u.PasswordHash, &u.IsVerified,
		&u.VerificationToken, &u.ResetToken, &expiresAt, &prefs,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.ID = domain.NewUserID(id)
	u.ResetTokenExpiresAt = expiresAt
	if len(prefs) > 0 {
		var p domain.Preferences
		if err := json.Unmarshal(prefs, &p); err != nil {
			return nil, fmt.Errorf("decode preferences: %w", err)
		}
		u.Preferences = &p
	}
	return &u, nil
}

func marshalPreferences(p *domain.Preferences) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	return b, nil
}
