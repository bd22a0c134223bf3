package services

import (
	"errors"

	"github.com/SAP-F-2025/drive-schedule-service/internal/validator"
)

// Domain errors
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials or role mismatch")
)

// Generic errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationErrors is surfaced to handlers as the error details
type ValidationErrors = validator.ValidationErrors

// NewValidationError wraps field errors so both errors.Is(ErrValidationFailed)
// and errors.As(*ValidationErrors) match
func NewValidationError(errs ValidationErrors) error {
	return errors.Join(ErrValidationFailed, errs)
}
