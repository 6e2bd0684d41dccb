package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode FailureCode
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "wrapped context canceled",
			err:          fmt.Errorf("gemini call: %w", context.Canceled),
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		// Configuration
		{
			name:         "advisor not configured",
			err:          ErrAdvisorUnavailable,
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  false,
		},
		// Output validation
		{
			name: "invalid advisor output",
			err: domainerror.NewRecommendationError(
				domainerror.ErrCodeInvalidAdvisorOutput,
				"domestic allocation sums to 80",
				domainerror.ErrInvalidAdvisorOutput,
			),
			expectedCode: ErrCodeAIInvalidOutput,
			expectRetry:  true,
		},
		// Typed provider errors
		{
			name:         "openai api error 429",
			err:          fmt.Errorf("openai request failed: %w", &openai.APIError{Message: "slow down", HTTPStatusCode: http.StatusTooManyRequests}),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "openai api error 401 without keywords",
			err:          &openai.APIError{Message: "nope", HTTPStatusCode: http.StatusUnauthorized},
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "openai request error 503",
			err:          fmt.Errorf("openai request failed: %w", &openai.RequestError{HTTPStatusCode: http.StatusServiceUnavailable, Err: errors.New("bad body")}),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "openai status beats message keywords",
			err:          &openai.APIError{Message: "invalid json in quota field", HTTPStatusCode: http.StatusForbidden},
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "openai 400 falls back to keywords",
			err:          &openai.APIError{Message: "could not parse the request", HTTPStatusCode: http.StatusBadRequest},
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "grpc resource exhausted",
			err:          fmt.Errorf("failed to generate content: %w", status.Error(codes.ResourceExhausted, "limit")),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "grpc permission denied",
			err:          status.Error(codes.PermissionDenied, "key revoked"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "grpc unavailable",
			err:          status.Error(codes.Unavailable, "backend down"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		// Rate limiting errors
		{
			name:         "quota error",
			err:          errors.New("quota exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "resource exhausted error",
			err:          errors.New("rpc error: code = ResourceExhausted desc = Resource exhausted"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		// Authentication errors
		{
			name:         "401 unauthorized",
			err:          errors.New("openai returned status 401"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("Invalid API key provided"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		// Network/connection errors
		{
			name:         "dial error",
			err:          errors.New("dial tcp 127.0.0.1:443: connect: connection refused"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 status code error",
			err:          errors.New("HTTP 503: service unavailable"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		// Parse errors
		{
			name:         "unmarshal error",
			err:          errors.New("failed to unmarshal advisor response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "uppercase json",
			err:          errors.New("Invalid JSON format"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		// Unknown errors
		{
			name:         "unknown error",
			err:          errors.New("something unexpected happened"),
			expectedCode: ErrCodeAIUnknownError,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, result.Retryable)
			}
			if result.Timestamp.IsZero() {
				t.Error("expected non-zero timestamp")
			}
			if result.Message != Message(tt.expectedCode) {
				t.Errorf("expected message %q, got %q", Message(tt.expectedCode), result.Message)
			}
		})
	}
}

func TestFailureMessages_AllCodesHaveMessages(t *testing.T) {
	codes := []FailureCode{
		ErrCodeAIServiceUnavailable,
		ErrCodeAIRateLimited,
		ErrCodeAIAuthError,
		ErrCodeAITimeout,
		ErrCodeAIParseError,
		ErrCodeAIInvalidOutput,
		ErrCodeAIUnknownError,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			if Message(code) == "" {
				t.Errorf("missing message for code %s", code)
			}
		})
	}
}
