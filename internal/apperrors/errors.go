package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the requested state change conflicts with the current state.
var ErrConflict = errors.New("conflict with current state")

// ErrStorage marks failures raised by the persistence layer (connection loss,
// unclassified constraint violations, scan errors).
var ErrStorage = errors.New("storage failure")

// Ledger error kinds. Each one wraps a broader sentinel so edges can map them
// either precisely or by category.
var (
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: start date must not be after end date", ErrValidation)
	ErrInvalidPeriod       = fmt.Errorf("%w: invalid year-month", ErrValidation)
	ErrInvalidEnvelopeName = fmt.Errorf("%w: invalid envelope name", ErrValidation)
	ErrMonthAlreadyClosed  = fmt.Errorf("%w: month already closed", ErrConflict)
)

// AppError carries an HTTP-style status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
	kind    error
}

// NewAppError builds an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewStorageError wraps a driver error so that errors.Is(err, ErrStorage) holds.
func NewStorageError(message string, err error) *AppError {
	appErr := NewAppError(http.StatusInternalServerError, message, err)
	appErr.kind = ErrStorage
	return appErr
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap exposes both the error kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
