package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/CameronXie/eth-order-api/internal/api/rest/requestid"
	"github.com/CameronXie/eth-order-api/internal/apperror"
)

const internalServerErrorMessage = "Internal server error"

// ErrorBody is the uniform shape of every failed response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSONResponse writes the given data as a JSON response with the specified status code.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// JSONErrorResponse writes an error message as a JSON response with the specified status code.
func JSONErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, ErrorBody{Success: false, Error: message})
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindOriginRejected:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponder converts errors into the uniform JSON error shape, logging the full detail of
// failures the client cannot see.
type ErrorResponder struct {
	logger *slog.Logger
}

// Respond writes err to w. Errors that are not an *apperror.Error are treated as internal.
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	logger := requestid.Logger(r.Context(), e.logger)
	message := appErr.Message

	switch appErr.Kind {
	case apperror.KindInternal:
		message = internalServerErrorMessage
		logger.ErrorContext(r.Context(), "server_error", "error", err, "method", r.Method, "path", r.URL.Path)
	case apperror.KindOriginRejected:
		logger.WarnContext(r.Context(), "origin_rejected", "error", err, "method", r.Method, "path", r.URL.Path)
	case apperror.KindValidation, apperror.KindNotFound:
	}

	JSONErrorResponse(w, StatusCode(appErr.Kind), message)
}

// NewErrorResponder returns an ErrorResponder logging through logger.
func NewErrorResponder(logger *slog.Logger) *ErrorResponder {
	return &ErrorResponder{logger: logger}
}
