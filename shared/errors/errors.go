// Package errors defines the error kinds shared across services and handlers.
// Sentinel values are matched with errors.Is; handlers that need a specific
// HTTP status use ErrorWithStatusCode.
package errors

import "errors"

var (
	// ErrValidation: a required signup field is empty.
	ErrValidation = errors.New("required fields missing")

	// ErrDuplicateEmail: signup targets an email already in the directory.
	ErrDuplicateEmail = errors.New("account already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes are never distinguished past this value.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound is internal to the directory; Login collapses it
	// into ErrInvalidCredentials before anything leaves the service.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCorruptEntry: a store entry exists but does not parse into the
	// expected shape. Recovered locally (empty directory / signed-out
	// session), surfaced only in logs.
	ErrCorruptEntry = errors.New("corrupt store entry")
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}
