// Package error defines domain-specific errors for the DinDin application.
package error

import "errors"

// Projection domain errors.
var (
	// ErrInvalidInput is returned when a calculator receives parameters outside its contract.
	ErrInvalidInput = errors.New("invalid projection input")

	// ErrUnknownProduct is returned when a comparison references a product that is not in the catalog.
	ErrUnknownProduct = errors.New("unknown investment product")
)

// ProjectionErrorCode defines error codes for projection errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount  ProjectionErrorCode = "PRJ-010001"
	ErrCodeInvalidHorizon  ProjectionErrorCode = "PRJ-010002"
	ErrCodeInvalidRate     ProjectionErrorCode = "PRJ-010003"
	ErrCodeInvalidAges     ProjectionErrorCode = "PRJ-010004"
	ErrCodeUnknownProduct  ProjectionErrorCode = "PRJ-010005"
	ErrCodeInvalidAmount   ProjectionErrorCode = "PRJ-010006"
	ErrCodeMissingCalcData ProjectionErrorCode = "PRJ-010007"
)

// ProjectionError represents a projection error with code and message.
type ProjectionError struct {
	Code    ProjectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectionError) Unwrap() error {
	return e.Err
}

// NewProjectionError creates a new ProjectionError with the given code and message.
func NewProjectionError(code ProjectionErrorCode, message string, err error) *ProjectionError {
	return &ProjectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
