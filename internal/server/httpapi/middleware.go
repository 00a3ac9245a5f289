package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/sam-ezra/todo/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// userID returns the authenticated user id placed by withAuth, or "".
func userID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// withAuth validates the bearer token and stores the user id in the request
// context. Missing, malformed, invalid and expired tokens all produce 401,
// which the client treats as "session expired".
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	}
}

// withLimiter applies a fixed-window limiter. Over-limit requests get 429,
// never a retry hint.
func (s *Server) withLimiter(l *FixedWindowLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := l.Acquire(r.Context()); err != nil {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}
