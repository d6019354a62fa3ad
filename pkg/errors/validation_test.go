package errors

import (
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "jobs.csv", false},
		{"nested", "data/run-1/jobs.json", false},
		{"absolute", "/tmp/timeline.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 2000)), true},
		{"null byte", "jobs\x00.csv", true},
		{"newline", "jobs\n.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"short hex", "#fff", false},
		{"long hex", "#1f77b4", false},
		{"upper hex", "#1F77B4", false},
		{"css name", "steelblue", false},

		{"empty", "", true},
		{"bad hex", "#12345", true},
		{"hex letters", "#gggggg", true},
		{"quote injection", `red" onload="x`, true},
		{"uppercase name", "Red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}
