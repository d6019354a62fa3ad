package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// Converter is the external program used for format conversion.
const Converter = "rsvg-convert"

const installHint = "install librsvg:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// ToPDF converts SVG bytes to a single-page PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG. A scale of 2.0 doubles the resolution;
// non-positive scales render at 1x.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// Available reports whether the converter is installed.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

func convert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	bin, err := exec.LookPath(Converter)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s export requires %s; %s", format, Converter, installHint)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s %s: %s", Converter, format, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
