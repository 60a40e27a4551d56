package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/nativoenglish/lingo/pkg/jwtx"
	"github.com/nativoenglish/lingo/pkg/slogx"
)

// TokenAuthenticator validates a raw bearer token of the expected kind,
// including revocation checks. Implemented by service.TokenService.
type TokenAuthenticator interface {
	VerifyKind(ctx context.Context, token string, kind jwtx.TokenKind) (jwtx.Claims, error)
}

// AuthnMiddleware extracts the bearer token, validates it as the expected
// kind and injects the identity claims into the request context.
//
// The kind check is what keeps temporary challenge tokens off regular
// endpoints: a challenge token only passes a middleware built with
// jwtx.KindChallenge.
func AuthnMiddleware(a TokenAuthenticator, kind jwtx.TokenKind) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := a.VerifyKind(ctx, raw, kind)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
