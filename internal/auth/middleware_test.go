package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nanambeah/MedPrep-Ghana/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	var seen *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.GetUserClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("claims missing from context: %v", err)
		}
		seen = claims
		w.WriteHeader(http.StatusNoContent)
	})
	handler := auth.AuthMiddleware(next)

	token, err := auth.GenerateJWT(testUserID, "user", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	t.Run("BearerHeader", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if seen == nil || seen.UserID != testUserID {
			t.Errorf("unexpected claims: %+v", seen)
		}
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestGetUserClaimsFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := auth.GetUserClaimsFromContext(req.Context()); err == nil {
		t.Error("expected an error without claims")
	}
}
