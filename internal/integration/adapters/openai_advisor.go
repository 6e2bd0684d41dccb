package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o-mini"

	portfolioMaxTokens   = 2000
	explanationMaxTokens = 1000
	chatMaxTokens        = 800
)

// OpenAIAdvisor implements the AdvisorService against an OpenAI compatible
// chat completions API.
type OpenAIAdvisor struct {
	apiKey      string
	model       string
	temperature float32
	client      *openai.Client
}

// NewOpenAIAdvisor creates a new OpenAI advisor instance. baseURL may be the API
// root or the full chat completions endpoint; empty values fall back to the
// public API and DefaultOpenAIModel.
func NewOpenAIAdvisor(apiKey, baseURL, model string, temperature float32, timeout time.Duration) *OpenAIAdvisor {
	baseURL = strings.TrimSuffix(strings.TrimRight(baseURL, "/"), "/chat/completions")
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIAdvisor{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		client:      openai.NewClientWithConfig(clientConfig),
	}
}

// IsAvailable checks if the OpenAI advisor is properly configured.
func (s *OpenAIAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// RecommendPortfolio asks the model for domestic and international suggestions.
func (s *OpenAIAdvisor) RecommendPortfolio(ctx context.Context, req *adapter.PortfolioRequest) (*entity.RecommendationBundle, error) {
	text, err := s.complete(ctx, portfolioSystemPrompt, buildPortfolioPrompt(req), portfolioMaxTokens, true)
	if err != nil {
		return nil, err
	}
	return decodePortfolio(text)
}

// Chat answers a free-text question.
func (s *OpenAIAdvisor) Chat(ctx context.Context, message string) (string, error) {
	return s.complete(ctx, chatSystemPrompt, buildChatPrompt(message), chatMaxTokens, false)
}

// ExplainTopic produces a didactic explanation of a topic.
func (s *OpenAIAdvisor) ExplainTopic(ctx context.Context, topic string) (*entity.TopicExplanation, error) {
	text, err := s.complete(ctx, "", buildExplainPrompt(topic), explanationMaxTokens, true)
	if err != nil {
		return nil, err
	}
	return decodeExplanation(text)
}

func (s *OpenAIAdvisor) complete(ctx context.Context, system, prompt string, maxTokens int, jsonOutput bool) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("openai service is not configured: unavailable")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: s.temperature,
	}
	if jsonOutput {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned an empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
