// Package apperrors defines the failure taxonomy shared by all layers and the
// single boundary responder that translates failures into the client-facing
// error contract. Inner layers raise these types and propagate them unchanged;
// translation happens exactly once, in Responder.
package apperrors

import "fmt"

// NotFoundError signals a lookup for an absent entity.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// NewNotFound formats a not-found failure.
func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// IllegalStateError signals a violated domain precondition.
type IllegalStateError struct {
	Msg string
	Err error
}

func (e *IllegalStateError) Error() string { return e.Msg }
func (e *IllegalStateError) Unwrap() error { return e.Err }

// NewIllegalState wraps a domain failure keeping its message for the envelope.
func NewIllegalState(err error) *IllegalStateError {
	return &IllegalStateError{Msg: err.Error(), Err: err}
}

// ValidationError carries the first field-level message of a rejected payload.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidation builds a validation failure for a single field.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// IntegrityError signals a store uniqueness or integrity constraint violation.
// The wrapped error keeps the raw driver text, which the boundary inspects for
// duplicate-key patterns.
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string { return e.Err.Error() }
func (e *IntegrityError) Unwrap() error { return e.Err }

// NewIntegrity wraps a constraint violation raised by the store.
func NewIntegrity(err error) *IntegrityError {
	return &IntegrityError{Err: err}
}

// RemoteUnavailableError signals a network-level failure (connection refused,
// timeout) while calling a sibling service.
type RemoteUnavailableError struct {
	Service string
	Err     error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("%s unreachable: %v", e.Service, e.Err)
}
func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

// NewRemoteUnavailable wraps a transport failure against the named service.
func NewRemoteUnavailable(service string, err error) *RemoteUnavailableError {
	return &RemoteUnavailableError{Service: service, Err: err}
}

// RemoteServerError signals a 5xx response from a sibling service.
type RemoteServerError struct {
	Service    string
	StatusCode int
}

func (e *RemoteServerError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}

// NewRemoteServer records a 5xx upstream response.
func NewRemoteServer(service string, statusCode int) *RemoteServerError {
	return &RemoteServerError{Service: service, StatusCode: statusCode}
}

// RemoteClientError signals a 4xx response from a sibling service.
type RemoteClientError struct {
	Service    string
	StatusCode int
}

func (e *RemoteClientError) Error() string {
	return fmt.Sprintf("%s rejected the request with status %d", e.Service, e.StatusCode)
}

// NewRemoteClient records a 4xx upstream response.
func NewRemoteClient(service string, statusCode int) *RemoteClientError {
	return &RemoteClientError{Service: service, StatusCode: statusCode}
}
