package response

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CameronXie/eth-order-api/internal/api/rest/requestid"
	"github.com/CameronXie/eth-order-api/internal/apperror"
)

func TestJSONResponse(t *testing.T) {
	cases := map[string]struct {
		status   int
		data     any
		expected string
	}{
		"Struct": {http.StatusOK, struct{ Name string }{Name: "test"}, `{"Name":"test"}`},
		"String": {http.StatusOK, "test", `"test"`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSONResponse(rr, tc.status, tc.data)
			checkResponse(t, rr, tc.status, tc.expected)
		})
	}
}

func TestJSONErrorResponse(t *testing.T) {
	cases := map[string]struct {
		status   int
		message  string
		expected string
	}{
		"BadRequest": {http.StatusBadRequest, "Invalid email format", `{"success":false,"error":"Invalid email format"}`},
		"NotFound":   {http.StatusNotFound, "Endpoint not found", `{"success":false,"error":"Endpoint not found"}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSONErrorResponse(rr, tc.status, tc.message)
			checkResponse(t, rr, tc.status, tc.expected)
		})
	}
}

func TestErrorResponder_Respond(t *testing.T) {
	cases := map[string]struct {
		err          error
		expectedCode int
		expectedBody string
		expectedLog  map[string]string
	}{
		"Validation": {
			err:          apperror.Validation("Missing required fields"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"Missing required fields"}`,
		},
		"OriginRejected": {
			err:          apperror.OriginRejected("http://evil.example"),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"success":false,"error":"CORS policy blocked the request"}`,
			expectedLog: map[string]string{
				"level":      "WARN",
				"msg":        "origin_rejected",
				"request_id": "req-1",
			},
		},
		"NotFound": {
			err:          apperror.NotFound(),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"error":"Endpoint not found"}`,
		},
		"Internal": {
			err:          apperror.Internal(errors.New("db down")),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
			expectedLog: map[string]string{
				"level": "ERROR",
				"msg":   "server_error",
				"error": "internal: Internal server error: db down",
			},
		},
		"InternalMessageIsNeverExposed": {
			err:          &apperror.Error{Kind: apperror.KindInternal, Message: "secret detail"},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
			expectedLog: map[string]string{
				"level": "ERROR",
				"msg":   "server_error",
				"error": "internal: secret detail",
			},
		},
		"UntypedError": {
			err:          errors.New("Not allowed by CORS"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
			expectedLog: map[string]string{
				"level": "ERROR",
				"msg":   "server_error",
				"error": "Not allowed by CORS",
			},
		},
		"WrappedValidation": {
			err:          fmt.Errorf("order: %w", apperror.Validation("Invalid ETH amount")),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"Invalid ETH amount"}`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			responder := NewErrorResponder(slog.New(slog.NewJSONHandler(&buf, nil)))

			r := httptest.NewRequest(http.MethodPost, "/api/order", http.NoBody)
			r = r.WithContext(requestid.WithID(r.Context(), "req-1"))
			rr := httptest.NewRecorder()

			responder.Respond(rr, r, tc.err)

			checkResponse(t, rr, tc.expectedCode, tc.expectedBody)
			if tc.expectedLog == nil {
				assert.Empty(t, buf.String())
				return
			}

			log := buf.String()
			for k, v := range tc.expectedLog {
				assert.Contains(t, log, fmt.Sprintf("%q:%q", k, v))
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(apperror.KindValidation))
	assert.Equal(t, http.StatusForbidden, StatusCode(apperror.KindOriginRejected))
	assert.Equal(t, http.StatusNotFound, StatusCode(apperror.KindNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(apperror.KindInternal))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(apperror.Kind(99)))
}

func checkResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedBody string) {
	result := rr.Result()
	defer result.Body.Close()

	body, _ := io.ReadAll(result.Body)

	if result.StatusCode != expectedStatus {
		t.Errorf("Expected response code %v. Got %v", expectedStatus, result.StatusCode)
	}
	if string(body) != expectedBody+"\n" {
		t.Errorf("Expected response %s. Got %s", expectedBody, string(body))
	}
	if ct := result.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected content type application/json. Got %s", ct)
	}
}
