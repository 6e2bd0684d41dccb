package error

// GeneralErrorCode defines error codes shared by every HTTP endpoint.
type GeneralErrorCode string

const (
	// ErrCodeRateLimited is returned when a client exceeds the request quota.
	ErrCodeRateLimited GeneralErrorCode = "GEN-020001"
	// ErrCodeInvalidRequestBody is returned when a request body cannot be bound.
	ErrCodeInvalidRequestBody GeneralErrorCode = "GEN-010001"
)
