// ABOUTME: Tests for the HTTP authentication middleware
// ABOUTME: Covers token extraction, pass-through behavior, and context binding

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2389/taskdeck/internal/store"
)

// mockResolver implements TokenResolver for middleware tests.
type mockResolver struct {
	user  *store.User
	err   error
	calls int
}

func (m *mockResolver) ResolveToken(_ context.Context, _ string) (*store.User, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func TestMiddleware_ValidToken(t *testing.T) {
	resolver := &mockResolver{
		user: &store.User{ID: "user-123", Username: "alice"},
	}

	var gotAuthCtx *AuthContext
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthCtx = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	Middleware(resolver, nil)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotAuthCtx == nil {
		t.Fatal("expected AuthContext in context")
	}
	if gotAuthCtx.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", gotAuthCtx.UserID, "user-123")
	}
	if gotAuthCtx.Username != "alice" {
		t.Errorf("Username = %q, want %q", gotAuthCtx.Username, "alice")
	}
}

func TestMiddleware_MissingHeader(t *testing.T) {
	resolver := &mockResolver{}

	var gotAuthCtx *AuthContext
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthCtx = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()

	Middleware(resolver, nil)(handler).ServeHTTP(rec, req)

	// Request proceeds anonymous, resolver never consulted
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotAuthCtx != nil {
		t.Errorf("expected no AuthContext, got %+v", gotAuthCtx)
	}
	if resolver.calls != 0 {
		t.Errorf("resolver should not be called, got %d calls", resolver.calls)
	}
}

func TestMiddleware_BadScheme(t *testing.T) {
	resolver := &mockResolver{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if FromContext(r.Context()) != nil {
			t.Error("expected no AuthContext for non-bearer header")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	Middleware(resolver, nil)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestMiddleware_ResolutionFailure(t *testing.T) {
	resolver := &mockResolver{err: errors.New("expired token")}

	var gotAuthCtx *AuthContext
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthCtx = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	Middleware(resolver, nil)(handler).ServeHTTP(rec, req)

	// Failure never aborts the request; it just stays anonymous
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if gotAuthCtx != nil {
		t.Errorf("expected no AuthContext, got %+v", gotAuthCtx)
	}
}

func TestMiddleware_DoesNotOverwriteExistingAuth(t *testing.T) {
	resolver := &mockResolver{
		user: &store.User{ID: "other-user", Username: "mallory"},
	}

	var gotAuthCtx *AuthContext
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthCtx = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	req = req.WithContext(WithAuth(req.Context(), &AuthContext{UserID: "original", Username: "alice"}))
	rec := httptest.NewRecorder()

	Middleware(resolver, nil)(handler).ServeHTTP(rec, req)

	if gotAuthCtx == nil {
		t.Fatal("expected AuthContext in context")
	}
	if gotAuthCtx.UserID != "original" {
		t.Errorf("existing identity was overwritten: UserID = %q", gotAuthCtx.UserID)
	}
	if resolver.calls != 0 {
		t.Errorf("resolver should not be called when identity exists, got %d calls", resolver.calls)
	}
}
