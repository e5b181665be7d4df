package candishared

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golangid/meetup/candihelper"
)

type (
	// ValidationError malformed or missing input, recoverable by correcting the request
	ValidationError struct {
		Message string
		Fields  candihelper.MultiError
	}

	// NotFoundError referenced meeting, date option or participant does not exist
	NotFoundError struct {
		Resource string
	}

	// AuthFailedError secret does not match stored digest, or credential not supplied at all
	AuthFailedError struct {
		Message           string
		MissingCredential bool
	}

	// ConflictError nickname already taken by another identity
	ConflictError struct {
		Message string
	}

	// IntegrityFaultError an invariant the store should have kept was observed broken.
	// Never returned to caller, only logged.
	IntegrityFaultError struct {
		Message string
	}
)

func (e *ValidationError) Error() string {
	if e.Fields != nil && e.Fields.HasError() {
		return fmt.Sprintf("%s: %s", e.Message, e.Fields.Error())
	}
	return e.Message
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *AuthFailedError) Error() string {
	return e.Message
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *IntegrityFaultError) Error() string {
	return "integrity fault: " + e.Message
}

// NewValidationError constructor, fields is optional field level detail
func NewValidationError(message string, fields ...candihelper.MultiError) error {
	e := &ValidationError{Message: message}
	if len(fields) > 0 {
		e.Fields = fields[0]
	}
	return e
}

// NewNotFoundError constructor
func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// NewAuthFailedError constructor
func NewAuthFailedError(message string) error {
	return &AuthFailedError{Message: message}
}

// NewCredentialRequiredError constructor for request without any credential
func NewCredentialRequiredError(message string) error {
	return &AuthFailedError{Message: message, MissingCredential: true}
}

// NewConflictError constructor
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewIntegrityFaultError constructor
func NewIntegrityFaultError(format string, a ...interface{}) error {
	return &IntegrityFaultError{Message: fmt.Sprintf(format, a...)}
}

// IsNotFound check error kind
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsAuthFailed check error kind
func IsAuthFailed(err error) bool {
	var e *AuthFailedError
	return errors.As(err, &e)
}

// IsConflict check error kind
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// IsValidation check error kind
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// HTTPStatusFromError map error kind to http status code
func HTTPStatusFromError(err error) int {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		authErr       *AuthFailedError
		conflictErr   *ConflictError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &authErr):
		if authErr.MissingCredential {
			return http.StatusUnauthorized
		}
		return http.StatusForbidden
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
