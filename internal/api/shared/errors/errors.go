package errors

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`

	// cause is logged by the transport and never serialized
	cause error
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.cause
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromError classifies an error by the domain sentinel it wraps.
// Client errors carry the error text as details, server errors only carry message.
func FromError(err error, message string) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var pendingErr *domain.PendingTransactionError
	var classified *APIError
	switch {
	case errors.As(err, &pendingErr):
		classified = NewServiceError(message, "transaction "+pendingErr.TxHash+" is not confirmed yet")
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidDonationPercent):
		classified = NewValidationError(err.Error())
	case errors.Is(err, domain.ErrInvalidSignature):
		classified = NewForbiddenError("Signature verification failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		classified = NewNotFoundError(message, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrTokenTypeNotMinted):
		classified = NewConflictError(message, err.Error())
	case errors.Is(err, domain.ErrTransactionReverted), errors.Is(err, domain.ErrConfirmationTimeout):
		classified = NewServiceError(message)
	default:
		classified = NewInternalError(message)
	}

	classified.cause = err
	return classified
}

// IsServerError reports whether the error maps to a 5xx response
func (e *APIError) IsServerError() bool {
	switch e.Code {
	case ErrCodeInternalError, ErrCodeDatabaseError, ErrCodeServiceError:
		return true
	default:
		return false
	}
}

// WithCause attaches the underlying error for logging
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}
