package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// Authenticator decides whether a request may reach the operator surface.
// Handlers and usecases never see the mechanism behind it.
type Authenticator interface {
	Authenticate(r *http.Request) bool
}

// TokenAuthenticator checks a static operator token from the Authorization
// header (Bearer) or the X-Admin-Token header, compared in constant time.
type TokenAuthenticator struct {
	Token string
}

func NewTokenAuthenticator(token string) *TokenAuthenticator {
	return &TokenAuthenticator{Token: token}
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) bool {
	if a.Token == "" {
		return false
	}

	presented := r.Header.Get("X-Admin-Token")
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		presented = strings.TrimPrefix(auth, "Bearer ")
	}

	return subtle.ConstantTimeCompare([]byte(presented), []byte(a.Token)) == 1
}

func RequireOperator(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Authenticate(r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Access denied",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
