package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// NewDatabaseError creates a new database error with details about the
// operation. It inspects the driver error text so that constraint races the
// handler's advisory checks missed still surface as user-visible conflicts
// rather than generic 500s. Covers both the postgres and sqlite spellings.
func NewDatabaseError(operation, entity string, cause error) *AppErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"),
			strings.Contains(errStr, "UNIQUE constraint failed"):
			return &AppErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"),
			strings.Contains(errStr, "FOREIGN KEY constraint failed"):
			return &AppErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "the referenced record does not exist or cannot be linked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &AppErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &AppErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "unable to reach the database",
				Cause:      cause,
			}
		}
	}

	return &AppErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}
