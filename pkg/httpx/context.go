package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims"
)

// UserIDFromContext returns the authenticated user ID injected by the
// authn middleware, or "" when the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext returns the authenticated email claim, or "".
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
