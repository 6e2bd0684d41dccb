package adapters

import (
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/dindin-invest/backend/internal/domain/entity"
)

func TestGeminiAdvisor_IsAvailable(t *testing.T) {
	if NewGeminiAdvisor("", "", 0).IsAvailable() {
		t.Error("advisor without key should be unavailable")
	}

	advisor := NewGeminiAdvisor("key", "", 0)
	if !advisor.IsAvailable() {
		t.Error("advisor with key should be available")
	}
	if advisor.modelName != DefaultGeminiModel {
		t.Errorf("expected default model, got %q", advisor.modelName)
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: true,
		},
		{
			name: "first text part",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("  "), genai.Text("olá")}}},
			}},
			want: "olá",
		},
		{
			name: "no text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.resp)
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "empty response") {
					t.Errorf("expected empty response error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDecodePortfolio_KeepsUnknownRisk(t *testing.T) {
	bundle, err := decodePortfolio(`{"domestic":[{"name":"X","allocation":100,"risk":"Extremo"}],"international":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.DomesticSuggestions[0].RiskLevel.IsValid() {
		t.Error("unknown risk should stay invalid")
	}
	if bundle.DomesticSuggestions[0].Region != entity.RegionDomestic {
		t.Error("expected domestic region")
	}
}

func TestCleanJSON(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```{\"a\":1}```":         `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range tests {
		if got := cleanJSON(in); got != want {
			t.Errorf("cleanJSON(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildPrompts(t *testing.T) {
	prompt := buildPortfolioPrompt(testPortfolioRequest())
	for _, want := range []string{"R$ 5.000,00", "R$ 2.500,00", "Moderado", "40 anos", "EXATAMENTE 10"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("portfolio prompt missing %q", want)
		}
	}

	if !strings.Contains(buildExplainPrompt("LCI"), `"LCI"`) {
		t.Error("explain prompt should quote the topic")
	}
	if !strings.Contains(buildChatPrompt("vale a pena?"), `"vale a pena?"`) {
		t.Error("chat prompt should quote the message")
	}
}
