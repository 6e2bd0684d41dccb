// Package advisor classifies failures of the generated-advice service so callers
// can log them and report why a deterministic fallback was served.
package advisor

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domainerror "github.com/dindin-invest/backend/internal/domain/error"
)

// ErrAdvisorUnavailable is returned when no advisor is configured.
var ErrAdvisorUnavailable = errors.New("advisor service unavailable")

// FailureCode identifies the kind of advisor failure.
type FailureCode string

const (
	ErrCodeAIServiceUnavailable FailureCode = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        FailureCode = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          FailureCode = "AI_AUTH_ERROR"
	ErrCodeAITimeout            FailureCode = "AI_TIMEOUT"
	ErrCodeAIParseError         FailureCode = "AI_PARSE_ERROR"
	ErrCodeAIInvalidOutput      FailureCode = "AI_INVALID_OUTPUT"
	ErrCodeAIUnknownError       FailureCode = "AI_UNKNOWN_ERROR"
)

// failureMessages contains Portuguese messages for each failure code.
var failureMessages = map[FailureCode]string{
	ErrCodeAIServiceUnavailable: "O assistente de IA esta indisponivel no momento. Usando resposta padrao.",
	ErrCodeAIRateLimited:        "Limite de requisicoes ao assistente de IA atingido. Usando resposta padrao.",
	ErrCodeAIAuthError:          "Erro de configuracao do assistente de IA. Usando resposta padrao.",
	ErrCodeAITimeout:            "O assistente de IA demorou mais do que o esperado. Usando resposta padrao.",
	ErrCodeAIParseError:         "Nao foi possivel interpretar a resposta do assistente de IA. Usando resposta padrao.",
	ErrCodeAIInvalidOutput:      "A resposta do assistente de IA estava incompleta. Usando resposta padrao.",
	ErrCodeAIUnknownError:       "Ocorreu um erro inesperado no assistente de IA. Usando resposta padrao.",
}

// ProcessingError describes why the advisor could not be used.
type ProcessingError struct {
	Code      FailureCode `json:"code"`
	Message   string      `json:"message"`
	Retryable bool        `json:"retryable"`
	Timestamp time.Time   `json:"timestamp"`
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Message returns the Portuguese message of a failure code.
func Message(code FailureCode) string {
	return failureMessages[code]
}

type rule struct {
	code      FailureCode
	retryable bool
	keywords  []string
}

// rules are checked in order when the error carries no status; the first
// keyword hit wins.
var rules = []rule{
	{ErrCodeAIRateLimited, true, []string{"rate limit", "quota", "429", "resource exhausted"}},
	{ErrCodeAIAuthError, false, []string{"401", "403", "invalid api key", "unauthorized", "authentication", "permission denied"}},
	{ErrCodeAIServiceUnavailable, true, []string{"connection", "network", "dial", "timeout", "unavailable", "503", "502"}},
	{ErrCodeAIParseError, true, []string{"parse", "json", "unmarshal", "decode", "empty response"}},
}

// Classify converts an advisor error to a ProcessingError with a code,
// Portuguese message and retryable flag.
func Classify(err error) *ProcessingError {
	code, retryable := classify(err)
	return &ProcessingError{
		Code:      code,
		Message:   failureMessages[code],
		Retryable: retryable,
		Timestamp: time.Now(),
	}
}

func classify(err error) (FailureCode, bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrCodeAITimeout, true
	case errors.Is(err, ErrAdvisorUnavailable):
		return ErrCodeAIServiceUnavailable, false
	case errors.Is(err, domainerror.ErrInvalidAdvisorOutput):
		return ErrCodeAIInvalidOutput, true
	}

	if code, retryable, ok := classifyHTTPStatus(httpStatus(err)); ok {
		return code, retryable
	}
	if st, ok := status.FromError(err); ok {
		if code, retryable, ok := classifyGRPCCode(st.Code()); ok {
			return code, retryable
		}
	}

	msg := strings.ToLower(err.Error())
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(msg, k) {
				return r.code, r.retryable
			}
		}
	}

	return ErrCodeAIUnknownError, true
}

// httpStatus extracts the status code of an OpenAI API error, or 0.
func httpStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

func classifyHTTPStatus(code int) (FailureCode, bool, bool) {
	switch code {
	case http.StatusTooManyRequests:
		return ErrCodeAIRateLimited, true, true
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrCodeAIAuthError, false, true
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrCodeAITimeout, true, true
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrCodeAIServiceUnavailable, true, true
	}
	return "", false, false
}

func classifyGRPCCode(code codes.Code) (FailureCode, bool, bool) {
	switch code {
	case codes.ResourceExhausted:
		return ErrCodeAIRateLimited, true, true
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrCodeAIAuthError, false, true
	case codes.DeadlineExceeded:
		return ErrCodeAITimeout, true, true
	case codes.Unavailable:
		return ErrCodeAIServiceUnavailable, true, true
	}
	return "", false, false
}
