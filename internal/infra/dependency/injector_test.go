package dependency

import (
	"testing"

	"github.com/dindin-invest/backend/config"
	"github.com/dindin-invest/backend/internal/integration/adapters"
)

func TestNewAdvisor(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AIConfig
		wantType string
		wantUp   bool
	}{
		{"gemini with key", config.AIConfig{Provider: "gemini", GeminiAPIKey: "k"}, "gemini", true},
		{"gemini without key", config.AIConfig{Provider: "gemini"}, "gemini", false},
		{"openai upper case", config.AIConfig{Provider: "OpenAI", OpenAIAPIKey: "k"}, "openai", true},
		{"unknown provider", config.AIConfig{Provider: "llama", GeminiAPIKey: "k"}, "gemini", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAdvisor(tt.cfg)

			switch tt.wantType {
			case "gemini":
				if _, ok := got.(*adapters.GeminiAdvisor); !ok {
					t.Fatalf("expected *GeminiAdvisor, got %T", got)
				}
			case "openai":
				if _, ok := got.(*adapters.OpenAIAdvisor); !ok {
					t.Fatalf("expected *OpenAIAdvisor, got %T", got)
				}
			}
			if got.IsAvailable() != tt.wantUp {
				t.Errorf("expected available=%v", tt.wantUp)
			}
		})
	}
}
