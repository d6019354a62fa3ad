package chart

import (
	"testing"
)

func TestNewFigure(t *testing.T) {
	fig := NewFigure(nil)
	if fig.Axes == nil {
		t.Fatal("NewFigure(nil) has no axes")
	}
	if fig.Width != DefaultWidth || fig.Height != DefaultHeight || fig.Top != DefaultTop {
		t.Errorf("NewFigure() = %vx%v top %v", fig.Width, fig.Height, fig.Top)
	}
}

func TestAxesBounds(t *testing.T) {
	ax := NewAxes()
	if _, _, _, _, ok := ax.Bounds(); ok {
		t.Error("empty axes reported bounds")
	}

	ax.HLines([]float64{0, 1.3}, []float64{5, 2}, []float64{7, 1}, nil, SeriesStyle{})
	ax.HLines([]float64{-0.15}, []float64{0}, []float64{3}, []int{9}, SeriesStyle{Label: "x"})

	xmin, xmax, ymin, ymax, ok := ax.Bounds()
	if !ok || xmin != 0 || xmax != 7 || ymin != -0.15 || ymax != 1.3 {
		t.Errorf("Bounds() = %v %v %v %v %v", xmin, xmax, ymin, ymax, ok)
	}
	if got := ax.Series[1].Segments[0].Entry; got != 9 {
		t.Errorf("entry = %d, want 9", got)
	}
	if got := ax.Labeled(); len(got) != 1 || got[0].Label != "x" {
		t.Errorf("Labeled() = %+v", got)
	}
}

func TestFigureLegend(t *testing.T) {
	fig := NewFigure(nil)
	l := FigureLegend(fig)

	if fig.Legend != l {
		t.Error("legend not attached to figure")
	}
	if l.AnchorX != 0.5 || l.AnchorY != 0.86 || l.Loc != LocLowerCenter {
		t.Errorf("legend anchor = (%v, %v) %q", l.AnchorX, l.AnchorY, l.Loc)
	}
	if fig.Top != 0.86 {
		t.Errorf("Top = %v, want 0.86", fig.Top)
	}
}

func TestFigureLegendOptions(t *testing.T) {
	fig := NewFigure(nil)
	l := FigureLegend(fig,
		WithLegendColumns(3),
		WithLegendFontSize(9),
		WithLegendFrame(false),
		WithLegendTitle("stage"),
	)
	if l.Columns != 3 || l.FontSize != 9 || l.Frame || l.Title != "stage" {
		t.Errorf("legend = %+v", l)
	}
	if l.AnchorY != LegendAnchorY {
		t.Errorf("styling options moved the anchor: %v", l.AnchorY)
	}

	l = FigureLegend(fig, WithLegendAnchor(1, 1, LocUpperRight))
	if l.AnchorX != 1 || l.Loc != LocUpperRight {
		t.Errorf("anchor override ignored: %+v", l)
	}
}
