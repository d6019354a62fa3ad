// Package render converts rendered SVG timelines to raster and print formats.
//
// [ToPNG] and [ToPDF] shell out to rsvg-convert (librsvg), so the SVG sink
// stays the only drawing backend:
//
//	svg := sink.RenderSVG(fig)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// When rsvg-convert is not on PATH both functions fail with
// errors.ErrCodeUnsupported and an installation hint.
package render
