package rest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/CameronXie/eth-order-api/internal/api/rest/middlewares"
)

type RouterConfig struct {
	ConnectivityHandler http.Handler
	OrderHandler        http.Handler
	NotFoundHandler     http.Handler

	// Middlewares wrap every route, including the not-found fallback. The first one listed runs first.
	Middlewares []middlewares.Middleware
}

// NewMuxWithHandlers initializes a new HTTP mux with routes defined by the given RouterConfig.
// Routes match case-insensitively and tolerate one trailing slash. Any method or path without a
// route of its own falls through to the NotFoundHandler.
func NewMuxWithHandlers(cfg *RouterConfig) http.Handler {
	router := http.NewServeMux()

	router.Handle("GET /api/test", cfg.ConnectivityHandler)
	router.Handle("POST /api/order", cfg.OrderHandler)
	router.Handle("/", cfg.NotFoundHandler)

	return middlewares.Chain(foldRoutePath(router), cfg.Middlewares...)
}

// routePath lower-cases p and drops a single trailing slash, leaving the root path alone.
func routePath(p string) string {
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}

	return strings.ToLower(p)
}

// foldRoutePath serves next with the request path replaced by its routePath form.
func foldRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := routePath(r.URL.Path)
		if p == r.URL.Path {
			next.ServeHTTP(w, r)
			return
		}

		r2 := new(http.Request)
		*r2 = *r
		r2.URL = new(url.URL)
		*r2.URL = *r.URL
		r2.URL.Path = p
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}
