package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/chart/sink"
	"github.com/matzehuels/jobtimeline/pkg/chart/styles"
	"github.com/matzehuels/jobtimeline/pkg/chart/styles/handdrawn"
	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// DefaultSeed seeds the handdrawn style when no seed is given.
const DefaultSeed = 42

// PNGScale is the resolution multiplier used for PNG output.
const PNGScale = 2.0

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the first failure cancels the remaining ones.
func Render(ctx context.Context, fig *chart.Figure, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if fig == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no figure to render")
	}
	if fig.Axes == nil {
		fig.Axes = chart.NewAxes()
	}

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(gctx, fig, format, svgOpts, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, fig *chart.Figure, format string, svgOpts []sink.SVGOption, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(fig, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(ctx, fig, sink.WithScale(PNGScale), sink.WithPNGSVGOptions(svgOpts...))
	case FormatPDF:
		return sink.RenderPDF(ctx, fig, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(fig, sink.WithJSONStyle(opts.Style), sink.WithJSONSeed(styleSeed(opts)))
	default:
		return nil, ValidateFormat(format)
	}
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption

	switch opts.Style {
	case StyleHanddrawn:
		svgOpts = append(svgOpts, sink.WithStyle(handdrawn.New(styleSeed(opts))))
	default:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Simple{}))
	}

	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts
}

func styleSeed(opts Options) uint64 {
	if opts.Style != StyleHanddrawn {
		return 0
	}
	if opts.Seed == 0 {
		return DefaultSeed
	}
	return opts.Seed
}
