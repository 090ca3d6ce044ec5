package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeedlessCat/SDPJSS-ALL/utils"
)

func claimsEcho(t *testing.T, wantID, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("claims missing from request context")
			return
		}
		if claims.ID != wantID || claims.Role != wantRole {
			t.Errorf("claims = {%s %s}, want {%s %s}", claims.ID, claims.Role, wantID, wantRole)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthUserAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateToken("abc123", utils.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("utoken", token)
	rec := httptest.NewRecorder()

	AuthUser(claimsEcho(t, "abc123", utils.RoleUser)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthRejections(t *testing.T) {
	familyToken, err := utils.GenerateToken("fam1", utils.RoleFamily)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{"missing token", "utoken", ""},
		{"malformed token", "utoken", "garbage"},
		{"wrong role token", "utoken", familyToken},
		{"token on wrong header", "ftoken", familyToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.value != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			called := false
			AuthUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})).ServeHTTP(rec, req)

			if called {
				t.Error("handler was called despite invalid auth")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}
