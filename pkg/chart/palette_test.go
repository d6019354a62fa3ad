package chart

import (
	"testing"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

func TestCycle(t *testing.T) {
	p := Cycle([]string{"red", "blue"})
	for i, want := range []string{"red", "blue", "red", "blue"} {
		if got := p(i); got != want {
			t.Errorf("p(%d) = %q, want %q", i, got, want)
		}
	}
	if got := p(-1); got != "blue" {
		t.Errorf("p(-1) = %q, want blue", got)
	}
	if got := Cycle(nil)(10); got != defaultColors[0] {
		t.Errorf("empty cycle falls back to %q, want %q", got, defaultColors[0])
	}
}

func TestParsePalette(t *testing.T) {
	if _, err := ParsePalette([]string{"#fff", "#1f77b4", "teal"}); err != nil {
		t.Errorf("ParsePalette() error: %v", err)
	}
	_, err := ParsePalette([]string{"#fff", `red" onload="x`})
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("error = %v, want INVALID_COLOR", err)
	}
}

func TestTemplateLabel(t *testing.T) {
	tests := []struct {
		tmpl string
		key  any
		want string
	}{
		{"", "etl", "etl"},
		{"stage {key}", "etl", "stage etl"},
		{"{key}/{key}", 3, "3/3"},
		{"fixed", 1.5, "fixed"},
		{"{key:>3}", 7, "{key:>3}"},
		{"{key:>3} {key}", 7, "{key:>3} 7"},
	}
	for _, tt := range tests {
		if got := TemplateLabel[any](tt.tmpl)(tt.key); got != tt.want {
			t.Errorf("TemplateLabel(%q)(%v) = %q, want %q", tt.tmpl, tt.key, got, tt.want)
		}
	}
}
