package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// Error codes shared by the client and the reference backend.
const (
	CodeAuthentication = "AUTHENTICATION_FAILED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeValidation     = "VALIDATION_FAILED"
	CodeNetwork        = "NETWORK_ERROR"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_ERROR"
)

// DomainError standardizes application errors across the client, the
// CLI, and the backend.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewAuthenticationError reports bad credentials or a rejected token.
func NewAuthenticationError(message string) error {
	if message == "" {
		message = "authentication failed"
	}
	return NewDomainError(CodeAuthentication, message, http.StatusUnauthorized, nil)
}

// NewForbidden reports an action disallowed for the caller's role.
func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

// NewNotFound reports an entity id that does not resolve.
func NewNotFound(resource string, details map[string]any) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, details)
}

// NewValidationError reports a malformed or incomplete request.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

// NewNetworkError wraps a transport failure where no HTTP response was
// received at all.
func NewNetworkError(err error) error {
	return &DomainError{
		Code:    CodeNetwork,
		Message: "request failed",
		Err:     err,
	}
}

// NewConflict reports a uniqueness violation such as a taken username.
func NewConflict(message string, details map[string]any) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, details)
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromStatus maps an HTTP response status to the error taxonomy. The
// message is what the backend sent, falling back to the status text.
func FromStatus(status int, message string) *DomainError {
	if message == "" {
		message = http.StatusText(status)
	}
	code := CodeInternal
	switch {
	case status == http.StatusUnauthorized:
		code = CodeAuthentication
	case status == http.StatusForbidden:
		code = CodeForbidden
	case status == http.StatusNotFound:
		code = CodeNotFound
	case status == http.StatusConflict:
		code = CodeConflict
	case status >= 400 && status < 500:
		code = CodeValidation
	}
	return NewDomainError(code, message, status, nil)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func hasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool { return hasCode(err, CodeAuthentication) }

// IsForbidden reports whether err is an authorization failure.
func IsForbidden(err error) bool { return hasCode(err, CodeForbidden) }

// IsNotFound reports whether err is a missing-entity failure.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool { return hasCode(err, CodeNetwork) }
