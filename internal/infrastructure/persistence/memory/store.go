// Package memory provides an in-process UserStore for development and
// tests. It upholds the same write-boundary guarantees as the Postgres
// store: uniqueness is checked and the record inserted under one lock.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// errNoSuchUser signals an Update against an id that was never inserted.
// This is an internal failure, not part of the auth error taxonomy.
var errNoSuchUser = errors.New("memory: no such user")

// Store is a mutex-guarded map store. Records are copied on the way in and
// out, so callers never share memory with the store's canonical copies.
type Store struct {
	mu       sync.RWMutex
	users    map[domain.UserID]*domain.User
	byEmail  map[string]domain.UserID
	byTag    map[string]domain.UserID
	sessions map[string]*domain.Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[domain.UserID]*domain.User),
		byEmail:  make(map[string]domain.UserID),
		byTag:    make(map[string]domain.UserID),
		sessions: make(map[string]*domain.Session),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.ResetTokenExpiresAt != nil {
		t := *u.ResetTokenExpiresAt
		c.ResetTokenExpiresAt = &t
	}
	if u.Preferences != nil {
		p := *u.Preferences
		c.Preferences = &p
	}
	return &c
}

func cloneSession(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// FindByEmail returns the user with the given normalized email, or nil.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byEmail[email]; ok {
		return cloneUser(s.users[id]), nil
	}
	return nil, nil
}

// FindByGamerTag returns the user with the given gamer tag, or nil.
func (s *Store) FindByGamerTag(ctx context.Context, gamerTag string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byTag[gamerTag]; ok {
		return cloneUser(s.users[id]), nil
	}
	return nil, nil
}

// FindByID returns the user with the given id, or nil.
func (s *Store) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.users[id]), nil
}

// FindByVerificationToken returns the user holding this outstanding
// verification token, or nil.
func (s *Store) FindByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.VerificationToken == token {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// FindByResetToken returns the user holding this outstanding reset token,
// or nil.
func (s *Store) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ResetToken == token {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// Insert adds a new account. The uniqueness check and the write happen
// under one lock, so concurrent duplicates resolve to exactly one success.
func (s *Store) Insert(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[user.Email]; ok {
		return domerrors.ErrEmailAlreadyExists
	}
	if _, ok := s.byTag[user.GamerTag]; ok {
		return domerrors.ErrGamerTagAlreadyExists
	}
	c := cloneUser(user)
	s.users[c.ID] = c
	s.byEmail[c.Email] = c.ID
	s.byTag[c.GamerTag] = c.ID
	return nil
}

// Update writes back a mutated account. Email and gamer tag indexes follow
// the record.
func (s *Store) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.users[user.ID]
	if !ok {
		return errNoSuchUser
	}
	if old.Email != user.Email {
		if _, taken := s.byEmail[user.Email]; taken {
			return domerrors.ErrEmailAlreadyExists
		}
		delete(s.byEmail, old.Email)
		s.byEmail[user.Email] = user.ID
	}
	if old.GamerTag != user.GamerTag {
		if _, taken := s.byTag[user.GamerTag]; taken {
			return domerrors.ErrGamerTagAlreadyExists
		}
		delete(s.byTag, old.GamerTag)
		s.byTag[user.GamerTag] = user.ID
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

// CreateSession stores a new session.
func (s *Store) CreateSession(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = cloneSession(session)
	return nil
}

// GetSession returns the session for the token, or nil.
func (s *Store) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.sessions[token]), nil
}

// DeleteSession removes the session for the token.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// DeleteExpiredSessions drops every session past its expiry and returns
// how many were removed.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for token, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n, nil
}

var _ ports.UserStore = (*Store)(nil)
