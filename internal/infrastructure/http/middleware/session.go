package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/playshelf/playshelf/internal/application/auth"
	"github.com/playshelf/playshelf/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser injects the authenticated user into the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// SessionResolver resolves "Authorization: Bearer <session token>" through
// the session lookup and puts the user in the request context.
type SessionResolver struct {
	sessions *auth.GetUserFromSession
}

// NewSessionResolver builds the resolver.
func NewSessionResolver(sessions *auth.GetUserFromSession) *SessionResolver {
	return &SessionResolver{sessions: sessions}
}

// Require rejects requests without a live session.
func (m *SessionResolver) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolve(r)
		if err != nil {
			writeUnauthorized(w, "internal error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			writeUnauthorized(w, "missing or invalid session", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// Optional resolves a session when one is presented and passes the request
// through either way. Used where an anonymous caller gets the unfiltered
// view.
func (m *SessionResolver) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolve(r)
		if err == nil && user != nil {
			r = r.WithContext(WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *SessionResolver) resolve(r *http.Request) (*domain.User, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, nil
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return m.sessions.Execute(r.Context(), token)
}

func writeUnauthorized(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
