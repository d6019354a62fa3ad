package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/chart/styles"
)

const (
	legendPad    = 6.0
	legendSample = 22.0
	legendGap    = 6.0
	legendColGap = 14.0
)

// legendBox is the pixel rectangle of a legend with n entries laid out in
// cols columns.
type legendBox struct {
	x, y, w, h  float64
	cols, rows  int
	colW, lineH float64
	titleH      float64
}

func layoutLegend(fig *chart.Figure, l *chart.Legend, labels []string) legendBox {
	n := len(labels)
	cols := l.Columns
	if cols <= 0 || cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols

	textW := 0.0
	for _, s := range labels {
		textW = max(textW, styles.TextWidth(s, l.FontSize))
	}

	b := legendBox{
		cols:  cols,
		rows:  rows,
		colW:  legendSample + legendGap + textW + legendColGap,
		lineH: l.FontSize * 1.5,
	}
	if l.Title != "" {
		b.titleH = b.lineH
	}
	b.w = float64(cols)*b.colW - legendColGap + 2*legendPad
	b.h = float64(rows)*b.lineH + b.titleH + 2*legendPad

	// Anchor is in figure fractions with the origin at the bottom left.
	ax := l.AnchorX * fig.Width
	ay := fig.Height - l.AnchorY*fig.Height
	switch l.Loc {
	case chart.LocUpperCenter:
		b.x, b.y = ax-b.w/2, ay
	case chart.LocUpperRight:
		b.x, b.y = ax-b.w, ay
	case chart.LocUpperLeft:
		b.x, b.y = ax, ay
	default:
		b.x, b.y = ax-b.w/2, ay-b.h
	}
	return b
}

func (r *svgRenderer) renderLegend(buf *bytes.Buffer, fig *chart.Figure, l *chart.Legend) {
	series := fig.Axes.Labeled()
	if len(series) == 0 {
		return
	}
	if l.FontSize <= 0 {
		fixed := *l
		fixed.FontSize = labelFontSize
		l = &fixed
	}
	labels := make([]string, len(series))
	for i, s := range series {
		labels[i] = s.Label
	}
	b := layoutLegend(fig, l, labels)

	if l.Frame {
		r.style.RenderRect(buf, styles.Rect{Class: "legend", X: b.x, Y: b.y, W: b.w, H: b.h, Fill: "white", Stroke: "#ccc"})
	}
	if l.Title != "" {
		r.style.RenderText(buf, styles.Text{
			Class: "legend-title", Content: l.Title,
			X: b.x + b.w/2, Y: b.y + legendPad + l.FontSize,
			Size: l.FontSize, Anchor: styles.AnchorMiddle,
		})
	}

	for i, s := range series {
		col, row := i%b.cols, i/b.cols
		x := b.x + legendPad + float64(col)*b.colW
		mid := b.y + legendPad + b.titleH + float64(row)*b.lineH + b.lineH/2
		fmt.Fprintf(buf, `  <line class="legend-sample" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"/>`+"\n",
			x, mid, x+legendSample, mid, styles.EscapeXML(s.Color))
		r.style.RenderText(buf, styles.Text{
			Class: "legend-label", Content: s.Label,
			X: x + legendSample + legendGap, Y: mid + l.FontSize/3,
			Size: l.FontSize,
		})
	}
}
