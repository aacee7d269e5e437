package middlewares

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/CameronXie/eth-order-api/internal/api/rest/requestid"
)

// RequestIDMiddleware tags each request context with a random id used to correlate log lines.
type RequestIDMiddleware struct {
	newID func() string
}

func (m *RequestIDMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), m.newID())))
	})
}

func NewRequestIDMiddleware() Middleware {
	return &RequestIDMiddleware{newID: uuid.NewString}
}
