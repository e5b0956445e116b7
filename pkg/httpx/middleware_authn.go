package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/campfirehq/identity/pkg/jwtx"
	"github.com/campfirehq/identity/pkg/slogx"
)

// AuthnMiddleware is the authorization guard: it lets a request through only
// when the Authorization header carries a bearer token whose signature
// verifies and whose expiry is still in the future. Everything else -
// missing header, malformed token, bad signature, past expiry - is rejected
// with 401 before the wrapped handler runs. The guard is a pure predicate;
// it performs no per-resource ownership checks.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// writeBearerError emits the RFC 6750 challenge header plus the service's
// stable JSON error shape. The description never says whether the failure
// was signature, expiry, or shape.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"message":    "Unauthorized",
		"statusCode": http.StatusUnauthorized,
	})
}
