package sink

import (
	"context"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the figure as PDF via SVG conversion.
func RenderPDF(ctx context.Context, fig *chart.Figure, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return render.ToPDF(ctx, RenderSVG(fig, r.svgOpts...))
}
