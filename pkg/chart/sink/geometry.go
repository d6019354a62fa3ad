package sink

import (
	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/chart/styles"
)

const (
	tickFontSize  = 11.0
	labelFontSize = 13.0
	titleFontSize = 15.0
	tickLength    = 5.0

	marginRight  = 20.0
	marginBottom = 52.0
	marginLeft   = 44.0 // plus the widest y tick label
	titleGap     = 10.0

	rowPad  = 0.5 // data units kept below row 0 and above the last row
	edgePad = 0.2 // data units kept around fanned-out bars
	xPad    = 0.04
)

// geometry maps data coordinates to SVG pixels.
type geometry struct {
	left, right, top, bottom float64 // plot area in pixels
	xlo, xhi, ylo, yhi       float64 // data extent
}

func newGeometry(fig *chart.Figure) geometry {
	ax := fig.Axes

	tickW := 0.0
	for _, t := range ax.YTicks {
		tickW = max(tickW, styles.TextWidth(t, tickFontSize))
	}

	g := geometry{
		left:   marginLeft + tickW,
		right:  fig.Width - marginRight,
		top:    fig.Height * (1 - clamp01(fig.Top)),
		bottom: fig.Height - marginBottom,
	}
	if ax.Title != "" && fig.Legend == nil {
		g.top = max(g.top, titleFontSize+titleGap*2)
	}

	xmin, xmax, ymin, ymax, ok := ax.Bounds()
	if !ok {
		xmin, xmax, ymin, ymax = 0, 1, 0, 0
	}
	if xmax == xmin {
		xmin, xmax = xmin-1, xmax+1
	}
	pad := (xmax - xmin) * xPad
	g.xlo, g.xhi = xmin-pad, xmax+pad

	g.ylo = min(-rowPad, ymin-edgePad)
	g.yhi = max(float64(len(ax.YTicks))-1+rowPad, ymax+edgePad)
	return g
}

func (g geometry) x(v float64) float64 {
	return g.left + (v-g.xlo)/(g.xhi-g.xlo)*(g.right-g.left)
}

func (g geometry) y(v float64) float64 {
	return g.bottom - (v-g.ylo)/(g.yhi-g.ylo)*(g.bottom-g.top)
}

func (g geometry) width() float64  { return g.right - g.left }
func (g geometry) height() float64 { return g.bottom - g.top }

func clamp01(v float64) float64 { return max(0, min(1, v)) }
