package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so the HTTP boundary can pick a status code without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindOriginRejected
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindOriginRejected:
		return "origin_rejected"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is the single error type crossing package boundaries in the service.
// Message is safe to return to clients; Err holds the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns an Error reporting invalid client input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// OriginRejected returns an Error reporting that the declared origin is not allow-listed.
func OriginRejected(origin string) *Error {
	return &Error{
		Kind:    KindOriginRejected,
		Message: "CORS policy blocked the request",
		Err:     fmt.Errorf("origin %q not allowed", origin),
	}
}

// NotFound returns an Error reporting that no route matched the request.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Endpoint not found"}
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf reports the Kind of err, treating anything that is not an *Error as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindInternal
}
