package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{13.75, "13,8%"},
		{0, "0,0%"},
		{-2.04, "-2,0%"},
		{100, "100,0%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatYears(t *testing.T) {
	if got := FormatYears(1); got != "1 ano" {
		t.Errorf("got %q", got)
	}
	if got := FormatYears(10); got != "10 anos" {
		t.Errorf("got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Comparação",
		Headers: []string{"Produto", "Valor"},
		Rows: [][]string{
			{"Poupança", "R$ 1.000,00"},
			{"---"},
			{"CDB", "R$ 10,00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, top, header, separator, row, separator, row, bottom
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}

	width := lipgloss.Width(lines[1])
	for i, line := range lines[1:] {
		if got := lipgloss.Width(line); got != width {
			t.Errorf("line %d has width %d, want %d: %q", i+1, got, width, line)
		}
	}

	if !strings.Contains(out, "Poupança") || !strings.Contains(out, "R$ 10,00") {
		t.Errorf("missing cells in output:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderWarnings(t *testing.T) {
	if RenderWarnings(nil) != "" {
		t.Error("expected empty output for no warnings")
	}
	out := RenderWarnings([]string{"a", "b"})
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected one line per warning, got %q", out)
	}
}
