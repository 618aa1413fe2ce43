// Package result defines the uniform envelope every domain service operation
// returns. Expected domain conditions (not found, conflict, validation) travel
// as Failure values, never as raw errors across a service's public contract.
package result

import (
	"net/http"

	"github.com/dinesync/pos-api/pkg/apperror"
)

// Result is a tagged success/failure envelope with an HTTP-class status code
// the transport layer can map directly.
type Result[T any] struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       T      `json:"data,omitempty"`
	StatusCode int    `json:"status_code"`
}

// Ok builds a success result.
func Ok[T any](message string, data T, statusCode int) Result[T] {
	return Result[T]{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	}
}

// Fail builds a failure result with zero-valued data.
func Fail[T any](message string, statusCode int) Result[T] {
	return Result[T]{
		Success:    false,
		Message:    message,
		StatusCode: statusCode,
	}
}

// FromError maps an error to a failure result. AppError codes and messages are
// passed through; anything else is reported as a generic internal error so no
// internal detail leaks into the envelope.
func FromError[T any](err error) Result[T] {
	if appErr, ok := apperror.As(err); ok {
		return Fail[T](appErr.Message, appErr.Code)
	}
	return Fail[T]("Internal server error", http.StatusInternalServerError)
}

// IsFailure reports whether the result carries a failure.
func (r Result[T]) IsFailure() bool {
	return !r.Success
}
