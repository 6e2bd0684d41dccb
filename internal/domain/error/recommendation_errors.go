package error

import "errors"

// Recommendation domain errors.
var (
	// ErrInvalidFinancialProfile is returned when a profile cannot receive recommendations.
	ErrInvalidFinancialProfile = errors.New("invalid financial profile")

	// ErrInvalidAdvisorOutput is returned when the generated bundle breaks the catalog rules.
	ErrInvalidAdvisorOutput = errors.New("invalid advisor output")
)

// RecommendationErrorCode defines error codes for recommendation errors.
type RecommendationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRiskProfile     RecommendationErrorCode = "REC-010001"
	ErrCodeNoAvailableToInvest    RecommendationErrorCode = "REC-010002"
	ErrCodeInvalidInvestorAge     RecommendationErrorCode = "REC-010003"
	ErrCodeNegativeBudget         RecommendationErrorCode = "REC-010004"
	ErrCodeMissingProfileFields   RecommendationErrorCode = "REC-010005"
	ErrCodeInvalidAllocationInput RecommendationErrorCode = "REC-010006"

	// Internal errors (99XXXX)
	ErrCodeInvalidAdvisorOutput RecommendationErrorCode = "REC-990001"
)

// RecommendationError represents a recommendation error with code and message.
type RecommendationError struct {
	Code    RecommendationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecommendationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// NewRecommendationError creates a new RecommendationError with the given code and message.
func NewRecommendationError(code RecommendationErrorCode, message string, err error) *RecommendationError {
	return &RecommendationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
