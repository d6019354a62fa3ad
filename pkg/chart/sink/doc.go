// Package sink writes a [chart.Figure] to output formats.
//
// # SVG
//
// [RenderSVG] maps data coordinates into the figure's plot area (row 0 at
// the bottom), draws each series' job bars and end markers through a
// [styles.Style], labels the y axis with the worker ticks and the x axis
// with numeric or time ticks, and places the figure legend if one is set.
//
//	svg := sink.RenderSVG(fig,
//	    sink.WithStyle(handdrawn.New(42)),
//	    sink.WithBackground("white"),
//	)
//
// # PNG and PDF
//
// [RenderPNG] and [RenderPDF] render SVG first and convert it with
// rsvg-convert via the render package.
//
// # JSON
//
// [RenderJSON] exports the drawn series, segments and ticks for tools that
// want to restyle the timeline themselves.
//
// [chart.Figure]: github.com/matzehuels/jobtimeline/pkg/chart.Figure
// [styles.Style]: github.com/matzehuels/jobtimeline/pkg/chart/styles.Style
package sink
