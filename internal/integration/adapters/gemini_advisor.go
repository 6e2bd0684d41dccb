// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/dindin-invest/backend/internal/application/adapter"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash-lite"
	defaultTemperature = 0.7
)

// GeminiAdvisor implements the AdvisorService using Google Gemini.
type GeminiAdvisor struct {
	apiKey      string
	modelName   string
	temperature float32
	opts        []option.ClientOption
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
// An empty model uses DefaultGeminiModel; a non-positive temperature uses 0.7.
func NewGeminiAdvisor(apiKey, modelName string, temperature float32, opts ...option.ClientOption) *GeminiAdvisor {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &GeminiAdvisor{
		apiKey:      apiKey,
		modelName:   modelName,
		temperature: temperature,
		opts:        opts,
	}
}

// IsAvailable checks if the Gemini advisor is properly configured.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// RecommendPortfolio asks Gemini for domestic and international suggestions.
func (s *GeminiAdvisor) RecommendPortfolio(ctx context.Context, req *adapter.PortfolioRequest) (*entity.RecommendationBundle, error) {
	text, err := s.generate(ctx, portfolioSystemPrompt, buildPortfolioPrompt(req), true)
	if err != nil {
		return nil, err
	}
	return decodePortfolio(text)
}

// Chat answers a free-text question.
func (s *GeminiAdvisor) Chat(ctx context.Context, message string) (string, error) {
	return s.generate(ctx, chatSystemPrompt, buildChatPrompt(message), false)
}

// ExplainTopic produces a didactic explanation of a topic.
func (s *GeminiAdvisor) ExplainTopic(ctx context.Context, topic string) (*entity.TopicExplanation, error) {
	text, err := s.generate(ctx, "", buildExplainPrompt(topic), true)
	if err != nil {
		return nil, err
	}
	return decodeExplanation(text)
}

func (s *GeminiAdvisor) generate(ctx context.Context, system, prompt string, jsonOutput bool) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured: unavailable")
	}

	opts := append([]option.ClientOption{option.WithAPIKey(s.apiKey)}, s.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}
	if system != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp)
}

// responseText extracts the first text part of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("empty response from gemini: no text content")
}
