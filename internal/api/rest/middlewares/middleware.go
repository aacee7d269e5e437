package middlewares

import "net/http"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware interface {
	Handle(next http.Handler) http.Handler
}

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i].Handle(h)
	}

	return h
}
