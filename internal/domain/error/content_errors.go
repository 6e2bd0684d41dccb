package error

import "errors"

// Content domain errors.
var (
	// ErrArticleNotFound is returned when an educational article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrExplanationUnavailable is returned when no explanation can be produced for a topic.
	ErrExplanationUnavailable = errors.New("explanation unavailable")

	// ErrInvalidTopic is returned when the requested topic is empty.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrMarketIndicatorNotFound is returned when no indicator has the requested symbol.
	ErrMarketIndicatorNotFound = errors.New("market indicator not found")
)

// ContentErrorCode defines error codes for content errors.
type ContentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeArticleNotFound  ContentErrorCode = "CNT-010001"
	ErrCodeInvalidArticleID ContentErrorCode = "CNT-010002"
	ErrCodeInvalidTopic     ContentErrorCode = "CNT-010003"

	// Internal errors (99XXXX)
	ErrCodeExplanationUnavailable ContentErrorCode = "CNT-990001"
	ErrCodeContentUnavailable     ContentErrorCode = "CNT-990002"
)

// ContentError represents a content error with code and message.
type ContentError struct {
	Code    ContentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ContentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ContentError) Unwrap() error {
	return e.Err
}

// NewContentError creates a new ContentError with the given code and message.
func NewContentError(code ContentErrorCode, message string, err error) *ContentError {
	return &ContentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
