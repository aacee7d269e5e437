package middlewares

import (
	"fmt"
	"net/http"

	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
	"github.com/CameronXie/eth-order-api/internal/apperror"
)

// RecoveryMiddleware turns a panic in a downstream handler into a 500 response.
type RecoveryMiddleware struct {
	responder *response.ErrorResponder
}

// Handle recovers panics raised while serving the request.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			//nolint:errorlint // http.ErrAbortHandler is a sentinel panic value, not a wrapped error.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			m.responder.Respond(w, r, apperror.Internal(fmt.Errorf("panic: %w", err)))
		}()

		next.ServeHTTP(w, r)
	})
}

func NewRecoveryMiddleware(responder *response.ErrorResponder) Middleware {
	return &RecoveryMiddleware{responder: responder}
}
