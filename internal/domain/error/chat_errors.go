package error

import "errors"

// Chat domain errors.
var (
	// ErrEmptyMessage is returned when a chat message has no text.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrMessageTooLong is returned when a chat message exceeds the allowed size.
	ErrMessageTooLong = errors.New("message is too long")
)

// ChatErrorCode defines error codes for chat errors.
type ChatErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyMessage   ChatErrorCode = "CHT-010001"
	ErrCodeMessageTooLong ChatErrorCode = "CHT-010002"
	ErrCodeInvalidLimit   ChatErrorCode = "CHT-010003"

	// Internal errors (99XXXX)
	ErrCodeHistoryUnavailable ChatErrorCode = "CHT-990001"
)

// ChatError represents a chat error with code and message.
type ChatError struct {
	Code    ChatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// NewChatError creates a new ChatError with the given code and message.
func NewChatError(code ChatErrorCode, message string, err error) *ChatError {
	return &ChatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
