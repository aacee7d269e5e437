package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CameronXie/eth-order-api/internal/api/rest/requestid"
	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
	"github.com/CameronXie/eth-order-api/internal/apperror"
	"github.com/CameronXie/eth-order-api/internal/enforcer"
)

const (
	headerOrigin           = "Origin"
	headerVary             = "Vary"
	headerAllowOrigin      = "Access-Control-Allow-Origin"
	headerAllowCredentials = "Access-Control-Allow-Credentials"
	headerAllowMethods     = "Access-Control-Allow-Methods"
	headerAllowHeaders     = "Access-Control-Allow-Headers"
)

// CORSConfig lists what an allowed cross-origin caller may send.
type CORSConfig struct {
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// DefaultCORSConfig permits GET and POST with Content-Type and Authorization headers and credentials.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
}

// OriginPolicyMiddleware rejects requests whose declared origin is not allowed and decorates the rest
// with CORS response headers. Preflight requests are answered here and never reach the router.
type OriginPolicyMiddleware struct {
	enforcer       enforcer.Enforcer
	responder      *response.ErrorResponder
	logger         *slog.Logger
	allowedMethods string
	allowedHeaders string
	credentials    bool
}

// Handle applies the origin policy before passing the request on.
func (m *OriginPolicyMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get(headerOrigin)

		allowed, err := m.enforcer.Enforce(r.Context(), &enforcer.OriginRequest{Origin: origin})
		if err != nil {
			m.responder.Respond(w, r, apperror.Internal(fmt.Errorf("enforce origin policy: %w", err)))
			return
		}

		if !allowed {
			m.responder.Respond(w, r, apperror.OriginRejected(origin))
			return
		}

		h := w.Header()
		if origin != "" {
			h.Set(headerAllowOrigin, origin)
		}
		h.Add(headerVary, headerOrigin)
		if m.credentials {
			h.Set(headerAllowCredentials, "true")
		}
		h.Set(headerAllowMethods, m.allowedMethods)
		h.Set(headerAllowHeaders, m.allowedHeaders)

		if r.Method == http.MethodOptions {
			requestid.Logger(r.Context(), m.logger).DebugContext(r.Context(), "preflight_answered", "origin", origin, "path", r.URL.Path)
			h.Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewOriginPolicyMiddleware returns a Middleware enforcing e and advertising cfg to allowed callers.
func NewOriginPolicyMiddleware(
	e enforcer.Enforcer,
	cfg CORSConfig,
	responder *response.ErrorResponder,
	logger *slog.Logger,
) Middleware {
	return &OriginPolicyMiddleware{
		enforcer:       e,
		responder:      responder,
		logger:         logger,
		allowedMethods: strings.Join(cfg.AllowedMethods, ","),
		allowedHeaders: strings.Join(cfg.AllowedHeaders, ","),
		credentials:    cfg.AllowCredentials,
	}
}
