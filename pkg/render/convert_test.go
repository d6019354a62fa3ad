package render

import (
	"context"
	"testing"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"><rect width="4" height="4"/></svg>`

func TestConvertWithoutConverter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if Available() {
		t.Fatal("Available() = true with empty PATH")
	}
	_, err := ToPNG(context.Background(), []byte(tinySVG), 2)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPDF(context.Background(), []byte(tinySVG))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(tinySVG), 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("ToPNG() did not return a PNG: %q", png[:min(8, len(png))])
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF(context.Background(), []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("ToPDF() did not return a PDF")
	}
}
