package domain

import "time"

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Session is a server-issued capability: holding the token is the sole
// proof needed to act as the user. Sessions carry no embedded data;
// validity is determined purely by store lookup.
type Session struct {
	Token     string
	UserID    UserID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession builds a session for the user with the given token and TTL.
func NewSession(token string, userID UserID, now time.Time, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
