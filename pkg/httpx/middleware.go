package httpx

import "net/http"

// Middleware wraps a handler with extra behaviour. Chains apply outermost
// first, so Chain(h, A, B) serves A(B(h)).
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares around h.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
