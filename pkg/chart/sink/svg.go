package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/chart/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	background string
	tickCount  int
}

func WithStyle(s styles.Style) SVGOption     { return func(r *svgRenderer) { r.style = s } }
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }
func WithTickCount(n int) SVGOption         { return func(r *svgRenderer) { r.tickCount = n } }

// RenderSVG draws fig as a standalone SVG document.
func RenderSVG(fig *chart.Figure, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	if fig.Axes == nil {
		fig.Axes = chart.NewAxes()
	}
	g := newGeometry(fig)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		fig.Width, fig.Height, fig.Width, fig.Height)

	r.style.RenderDefs(&buf)
	if r.background != "" {
		r.style.RenderRect(&buf, styles.Rect{Class: "background", W: fig.Width, H: fig.Height, Fill: r.background})
	}

	r.renderAxes(&buf, fig, g)
	r.renderSeries(&buf, fig.Axes, g)
	if fig.Legend != nil {
		r.renderLegend(&buf, fig, fig.Legend)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, tickCount: chart.DefaultTickCount}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// XTicks returns the x ticks RenderSVG draws for ax.
func XTicks(ax *chart.Axes, n int) []chart.Tick {
	xmin, xmax, _, _, ok := ax.Bounds()
	if !ok {
		return nil
	}
	if ax.TimeAxis {
		return chart.TimeTicks(xmin, xmax, n)
	}
	return chart.NiceTicks(xmin, xmax, n)
}

func (r *svgRenderer) renderAxes(buf *bytes.Buffer, fig *chart.Figure, g geometry) {
	ax := fig.Axes
	r.style.RenderRect(buf, styles.Rect{Class: "frame", X: g.left, Y: g.top, W: g.width(), H: g.height(), Stroke: "#333"})

	for i, label := range ax.YTicks {
		y := g.y(float64(i))
		fmt.Fprintf(buf, `  <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333"/>`+"\n",
			g.left-tickLength, y, g.left, y)
		r.style.RenderText(buf, styles.Text{
			Class: "ytick", Content: label,
			X: g.left - tickLength - 3, Y: y + tickFontSize/3,
			Size: tickFontSize, Anchor: styles.AnchorEnd,
		})
	}

	for _, t := range XTicks(ax, r.tickCount) {
		x := g.x(t.Value)
		fmt.Fprintf(buf, `  <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333"/>`+"\n",
			x, g.bottom, x, g.bottom+tickLength)
		r.style.RenderText(buf, styles.Text{
			Class: "xtick", Content: t.Label,
			X: x, Y: g.bottom + tickLength + tickFontSize + 2,
			Size: tickFontSize, Anchor: styles.AnchorMiddle,
		})
	}

	if ax.XLabel != "" {
		r.style.RenderText(buf, styles.Text{
			Class: "xlabel", Content: ax.XLabel,
			X: g.left + g.width()/2, Y: fig.Height - 10,
			Size: labelFontSize, Anchor: styles.AnchorMiddle,
		})
	}
	if ax.YLabel != "" {
		x, y := labelFontSize+4, g.top+g.height()/2
		r.style.RenderText(buf, styles.Text{
			Class: "ylabel", Content: ax.YLabel,
			X: x, Y: y, Size: labelFontSize, Anchor: styles.AnchorMiddle, Rotate: -90,
		})
	}
	if ax.Title != "" && fig.Legend == nil {
		r.style.RenderText(buf, styles.Text{
			Class: "title", Content: ax.Title,
			X: g.left + g.width()/2, Y: g.top - titleGap,
			Size: titleFontSize, Anchor: styles.AnchorMiddle,
		})
	}
}

func (r *svgRenderer) renderSeries(buf *bytes.Buffer, ax *chart.Axes, g geometry) {
	for i, s := range ax.Series {
		size := s.MarkerSize
		if size <= 0 {
			size = chart.DefaultMarkerSize
		}
		for _, seg := range s.Segments {
			y := g.y(seg.Y)
			x1, x2 := g.x(seg.XMin), g.x(seg.XMax)
			r.style.RenderSegment(buf, styles.Segment{Entry: seg.Entry, Series: i, X1: x1, X2: x2, Y: y, Color: s.Color})
			if !s.BeginMarker.IsZero() {
				r.style.RenderMarker(buf, styles.Marker{Entry: seg.Entry, Shape: s.BeginMarker, X: x1, Y: y, Size: size, Color: s.Color})
			}
			if !s.EndMarker.IsZero() {
				r.style.RenderMarker(buf, styles.Marker{Entry: seg.Entry, Shape: s.EndMarker, X: x2, Y: y, Size: size, Color: s.Color})
			}
		}
	}
}
