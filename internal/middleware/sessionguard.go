package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/session"
)

type sessionTokenKey struct{}

// TokenVerifier checks a stored bearer token against the auth collaborator.
type TokenVerifier func(ctx context.Context, token string) error

// SessionGuard protects the admin routes. A missing or rejected token clears
// the session and sends the visitor to the login route; there is no retry and
// no token refresh. A collaborator outage is not a verdict on the token, so
// in that case the session is kept and the request fails with 502.
func SessionGuard(sessions *session.Manager, verify TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessions.Token(r)
			if token == "" {
				denySession(w, r, sessions)
				return
			}
			if err := verify(r.Context(), token); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					denySession(w, r, sessions)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadGateway)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "auth collaborator unavailable"})
				return
			}
			ctx := context.WithValue(r.Context(), sessionTokenKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DenySession clears the session and answers with the login redirect. Shared
// by the guard and by handlers that hit a 401 mid-request.
func DenySession(w http.ResponseWriter, r *http.Request, sessions *session.Manager) {
	denySession(w, r, sessions)
}

func denySession(w http.ResponseWriter, r *http.Request, sessions *session.Manager) {
	sessions.Clear(w)
	if r.Method == http.MethodGet {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":    "session invalid",
		"redirect": "/login",
	})
}

// SessionTokenFromContext returns the verified bearer token for the request.
func SessionTokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionTokenKey{}).(string); ok {
		return v
	}
	return ""
}
