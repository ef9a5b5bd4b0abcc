package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel values for the application error taxonomy.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type AppErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of AppErr as
// an argument of type `error`
func (e *AppErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// Message returns the user-facing error text without the details suffix.
func (e *AppErr) Message() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *AppErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var appErr *AppErr
		if errors.As(e.Cause, &appErr) {
			msg = fmt.Sprintf("%s -> %s", msg, appErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &AppErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *AppErr) Unwrap() error {
	return e.err
}

func NewNotFound(entity string) *AppErr {
	return &AppErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewForbiddenError(message string) *AppErr {
	return &AppErr{StatusCode: http.StatusForbidden, err: errors.New(message)}
}

func NewInternalErrorWithCause(message string, cause error) *AppErr {
	return &AppErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(message),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// StatusOf extracts the HTTP status from an error, defaulting to 500 for
// anything outside the taxonomy.
func StatusOf(err error) int {
	var appErr *AppErr
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
