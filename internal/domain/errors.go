package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCacheMiss indicates no cached entry was found.
var ErrCacheMiss = errors.New("cache miss")

// ErrorCode is a machine-readable classification for fatal errors.
type ErrorCode string

const (
	// CodeConnectionFailed indicates a backing store connection failure.
	CodeConnectionFailed ErrorCode = "DB_CONNECTION_FAILED"

	// CodeEmbeddingFailed indicates embedding generation failed.
	CodeEmbeddingFailed ErrorCode = "EMBEDDING_FAILED"

	// CodeVectorSearchFailed indicates a vector similarity search failed.
	CodeVectorSearchFailed ErrorCode = "VECTOR_SEARCH_FAILED"

	// CodeCompletionFailed indicates completion generation failed.
	CodeCompletionFailed ErrorCode = "COMPLETION_FAILED"

	// CodeInvalidRequest indicates the request failed validation.
	CodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// CodeResourceNotFound indicates a requested record does not exist.
	CodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"

	// CodeRateLimitExceeded indicates an upstream rate limit was hit.
	CodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeInternal is the fallback for unclassified failures.
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is the closed error type carrying a code, a human-readable message
// and optional structured context. All fatal pipeline errors are of this type.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// NewError creates a classified error without a cause.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: nil,
		cause:   nil,
	}
}

// WrapError creates a classified error wrapping an underlying cause.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: nil,
		cause:   cause,
	}
}

// WithContext attaches a structured context entry and returns the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the error code to a stable HTTP status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeResourceNotFound:
		return http.StatusNotFound
	case CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case CodeConnectionFailed:
		return http.StatusServiceUnavailable
	case CodeEmbeddingFailed, CodeVectorSearchFailed, CodeCompletionFailed, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf extracts the error code from any error, defaulting to INTERNAL_ERROR
// for unclassified errors.
func CodeOf(err error) ErrorCode {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
