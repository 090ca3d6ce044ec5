package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

// Key type for context
type contextKey string

const AuthContextKey = contextKey("auth")

// ClaimsFromContext returns the token claims attached by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(AuthContextKey).(*utils.Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": "Not Authorized. Login Again",
	})
}

// authRole verifies the role token on the given header and attaches its
// claims to the request context.
func authRole(header, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(header)
			if tokenStr == "" {
				unauthorized(w)
				return
			}

			claims, err := utils.ParseToken(tokenStr)
			if err != nil || claims.Role != role {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), AuthContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthFamily verifies the family token on the "ftoken" header.
func AuthFamily(next http.Handler) http.Handler {
	return authRole("ftoken", utils.RoleFamily)(next)
}

// AuthUser verifies the member token on the "utoken" header.
func AuthUser(next http.Handler) http.Handler {
	return authRole("utoken", utils.RoleUser)(next)
}

// AuthAdmin verifies the admin token on the "atoken" header.
func AuthAdmin(next http.Handler) http.Handler {
	return authRole("atoken", utils.RoleAdmin)(next)
}
