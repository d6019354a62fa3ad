package pipeline

import (
	"math"
	"testing"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %q, want %q", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"handdrawn", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"defaults", func(*Options) {}, ""},
		{"zero group_num", func(o *Options) { o.GroupNum = 0 }, errors.ErrCodeInvalidGroupNum},
		{"negative group_num", func(o *Options) { o.GroupNum = -3 }, errors.ErrCodeInvalidGroupNum},
		{"zero radius", func(o *Options) { o.GroupRadius = 0 }, ""},
		{"negative radius", func(o *Options) { o.GroupRadius = -0.1 }, errors.ErrCodeInvalidInput},
		{"NaN radius", func(o *Options) { o.GroupRadius = math.NaN() }, errors.ErrCodeInvalidInput},
		{"infinite radius", func(o *Options) { o.GroupRadius = math.Inf(1) }, errors.ErrCodeInvalidInput},
		{"NaN width", func(o *Options) { o.Width = math.NaN() }, errors.ErrCodeInvalidInput},
		{"NaN marker size", func(o *Options) { o.MarkerSize = math.NaN() }, errors.ErrCodeInvalidInput},
		{"unknown marker", func(o *Options) { o.MarkerEnd = "star" }, errors.ErrCodeInvalidMarker},
		{"bad palette", func(o *Options) { o.Palette = []string{"#12"} }, errors.ErrCodeInvalidColor},
		{"bad background", func(o *Options) { o.Background = "url(#x)" }, errors.ErrCodeInvalidColor},
		{"bad style", func(o *Options) { o.Style = "neon" }, errors.ErrCodeInvalidStyle},
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			err := opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("ValidateAndSetDefaults() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaults_FillsEmptyOptions(t *testing.T) {
	opts := Options{GroupNum: 3}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != StyleSimple {
		t.Errorf("Style = %q, want %q", opts.Style, StyleSimple)
	}
	if opts.MarkerBegin != "bracket-begin" || opts.MarkerEnd != "bracket-end" {
		t.Errorf("markers = %q/%q, want bracket-begin/bracket-end", opts.MarkerBegin, opts.MarkerEnd)
	}
	if opts.Columns.Worker != "worker" {
		t.Errorf("Columns.Worker = %q, want worker", opts.Columns.Worker)
	}
	if opts.GroupRadius != 0 {
		t.Errorf("GroupRadius = %v, want 0 (never defaulted)", opts.GroupRadius)
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error = %v", err)
	}
}

func TestFromConfig(t *testing.T) {
	opts := DefaultOptions()
	if opts.GroupNum != 2 || opts.GroupRadius != 0.3 {
		t.Errorf("group options = %d/%v, want 2/0.3", opts.GroupNum, opts.GroupRadius)
	}
	if opts.Legend.Enabled {
		t.Error("legend should be off by default")
	}
	tl := opts.TimelineOptions()
	if tl.GroupNum != opts.GroupNum || tl.GroupRadius != opts.GroupRadius {
		t.Errorf("TimelineOptions() = %+v", tl)
	}
}
