package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	token, err := GenerateToken("user-1", "ada@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := parseToken(token)
	if err != nil {
		t.Fatalf("parseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "ada@example.com" || claims.Role != "admin" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestJWTMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := GetClaimsFromContext(r.Context()); err == nil {
			gotUserID = claims.UserID
		}
		w.WriteHeader(http.StatusOK)
	})
	protected := JWTMiddleware(next)

	// No token.
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, httptest.NewRequest("GET", "/api/queries", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rr.Code)
	}

	// Garbage token.
	rr = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/queries", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	protected.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", rr.Code)
	}

	// Public path needs no token.
	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("public path: status = %d, want 200", rr.Code)
	}

	// Valid token reaches the handler with claims attached.
	token, err := GenerateToken("user-7", "x@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/queries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", rr.Code)
	}
	if gotUserID != "user-7" {
		t.Fatalf("claims userID = %q, want user-7", gotUserID)
	}
}
