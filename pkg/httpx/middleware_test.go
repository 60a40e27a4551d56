package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nativoenglish/lingo/pkg/httpx"
	"github.com/nativoenglish/lingo/pkg/jwtx"
)

// stubAuthenticator accepts tokens of the form "<kind>-token" and rejects
// everything else.
type stubAuthenticator struct{}

func (stubAuthenticator) VerifyKind(_ context.Context, token string, kind jwtx.TokenKind) (jwtx.Claims, error) {
	if token != string(kind)+"-token" {
		return jwtx.Claims{}, errors.New("invalid_token")
	}
	claims := jwtx.NewClaims(kind, "user-1", "teacher", "t@example.com", "teach", time.Minute, "test", time.Now())
	return claims, nil
}

func okHandler(t *testing.T, wantUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantUserID != "" {
			require.Equal(t, wantUserID, httpx.UserIDFromCtx(r.Context()))
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	h := httpx.Chain(okHandler(t, "user-1"),
		httpx.AuthnMiddleware(stubAuthenticator{}, jwtx.KindAccess),
	)

	do := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := do("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Authentication required")
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		rec := do("Basic abc123")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := do("Bearer nonsense")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("challenge token rejected on access endpoint", func(t *testing.T) {
		rec := do("Bearer challenge-token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("access token passes and claims reach the handler", func(t *testing.T) {
		rec := do("Bearer access-token")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	protected := func(roles ...string) http.Handler {
		return httpx.Chain(okHandler(t, ""),
			httpx.AuthnMiddleware(stubAuthenticator{}, jwtx.KindAccess),
			httpx.RequireRole(roles...),
		)
	}

	do := func(h http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer access-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("matching role passes", func(t *testing.T) {
		rec := do(protected("teacher"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("any-of roles pass", func(t *testing.T) {
		rec := do(protected("admin", "teacher"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role mismatch is a hard 403", func(t *testing.T) {
		rec := do(protected("admin"))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "Permission denied")
	})

	t.Run("no roles configured denies everyone", func(t *testing.T) {
		rec := do(protected())
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRateLimitByIP(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := httpx.Chain(okHandler(t, ""), httpx.RateLimitByIP(cfg))

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do("10.0.0.1").Code)
	require.Equal(t, http.StatusOK, do("10.0.0.1").Code)

	t.Run("third request within the window is throttled", func(t *testing.T) {
		rec := do("10.0.0.1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("other client keys are unaffected", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do("10.0.0.2").Code)
	})
}
