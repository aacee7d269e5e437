package middlewares

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
)

func TestRecoveryMiddleware_Handle(t *testing.T) {
	cases := map[string]struct {
		next         http.HandlerFunc
		expectedCode int
		expectedBody string
		expectedLog  string
	}{
		"NoPanic": {
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			expectedCode: http.StatusOK,
		},
		"PanicWithString": {
			next: func(_ http.ResponseWriter, _ *http.Request) {
				panic("something broke")
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}` + "\n",
			expectedLog:  `"error":"internal: Internal server error: panic: something broke"`,
		},
		"PanicWithError": {
			next: func(_ http.ResponseWriter, _ *http.Request) {
				panic(errors.New("nil map"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}` + "\n",
			expectedLog:  `"error":"internal: Internal server error: panic: nil map"`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			middleware := NewRecoveryMiddleware(response.NewErrorResponder(slog.New(slog.NewJSONHandler(&buf, nil))))

			w := httptest.NewRecorder()
			middleware.Handle(tc.next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
			if tc.expectedLog != "" {
				assert.Contains(t, buf.String(), tc.expectedLog)
			}
		})
	}
}

func TestRecoveryMiddleware_AbortHandlerIsRepanicked(t *testing.T) {
	middleware := NewRecoveryMiddleware(response.NewErrorResponder(slog.New(slog.DiscardHandler)))
	handler := middleware.Handle(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}
