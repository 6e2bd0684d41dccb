// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dindin-invest/backend/internal/application/usecase/advisor"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// FallbackReasonResponse explains why a deterministic answer replaced the AI one.
type FallbackReasonResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Timestamp string `json:"timestamp"`
}

// ToFallbackReasonResponse converts a classified advisor failure. Nil stays nil.
func ToFallbackReasonResponse(p *advisor.ProcessingError) *FallbackReasonResponse {
	if p == nil {
		return nil
	}
	return &FallbackReasonResponse{
		Code:      string(p.Code),
		Message:   p.Message,
		Retryable: p.Retryable,
		Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
	}
}
