package chart

const (
	// DefaultWidth is the default figure width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default figure height in pixels.
	DefaultHeight = 480.0

	// DefaultTop is the fraction of the figure height below which the axes end.
	DefaultTop = 0.92

	// DefaultXLabel and DefaultYLabel are the axis titles applied by JobTimeline.
	DefaultXLabel = "Time"
	DefaultYLabel = "Worker"
)

// Figure is the top-level drawing surface.
type Figure struct {
	Width  float64
	Height float64

	// Top is the figure-fraction (0 bottom, 1 top) where the axes area ends.
	Top float64

	Axes   *Axes
	Legend *Legend
}

// NewFigure wraps ax in a figure with default size. A nil ax starts empty.
func NewFigure(ax *Axes) *Figure {
	if ax == nil {
		ax = NewAxes()
	}
	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Top:    DefaultTop,
		Axes:   ax,
	}
}

// Axes records draw calls and axis decoration.
type Axes struct {
	Series []Series

	// YTicks replaces the numeric y tick labels: tick i is drawn at y = i.
	YTicks []string

	XLabel string
	YLabel string
	Title  string

	// TimeAxis marks x values as Unix seconds to be formatted as timestamps.
	TimeAxis bool
}

// NewAxes returns an empty Axes.
func NewAxes() *Axes {
	return &Axes{}
}

// Series is one draw call: a group of segments sharing color and label.
type Series struct {
	Label       string
	Color       string
	Segments    []Segment
	BeginMarker Marker
	EndMarker   Marker
	MarkerSize  float64
}

// Segment is one busy interval at height Y.
type Segment struct {
	Entry int // index of the entry in the input sequences
	Y     float64
	XMin  float64
	XMax  float64
}

// SeriesStyle is the shared styling of a draw call.
type SeriesStyle struct {
	Label       string
	Color       string
	BeginMarker Marker
	EndMarker   Marker
	MarkerSize  float64
}

// HLines draws one horizontal segment per (y, xmin, xmax) triple, with the
// style's begin and end markers at both ends, as a single series. entries
// maps each segment back to its input index and may be nil.
func (a *Axes) HLines(y, xmin, xmax []float64, entries []int, style SeriesStyle) {
	segs := make([]Segment, len(y))
	for i := range y {
		entry := i
		if entries != nil {
			entry = entries[i]
		}
		segs[i] = Segment{Entry: entry, Y: y[i], XMin: xmin[i], XMax: xmax[i]}
	}
	a.Series = append(a.Series, Series{
		Label:       style.Label,
		Color:       style.Color,
		Segments:    segs,
		BeginMarker: style.BeginMarker,
		EndMarker:   style.EndMarker,
		MarkerSize:  style.MarkerSize,
	})
}

// SetYTicks labels row i with labels[i].
func (a *Axes) SetYTicks(labels []string) { a.YTicks = labels }

// SetXLabel sets the x axis title.
func (a *Axes) SetXLabel(s string) { a.XLabel = s }

// SetYLabel sets the y axis title.
func (a *Axes) SetYLabel(s string) { a.YLabel = s }

// Bounds returns the data extent of every segment. ok is false when the axes
// hold no segments.
func (a *Axes) Bounds() (xmin, xmax, ymin, ymax float64, ok bool) {
	for _, s := range a.Series {
		for _, seg := range s.Segments {
			lo, hi := min(seg.XMin, seg.XMax), max(seg.XMin, seg.XMax)
			if !ok {
				xmin, xmax, ymin, ymax, ok = lo, hi, seg.Y, seg.Y, true
				continue
			}
			xmin, xmax = min(xmin, lo), max(xmax, hi)
			ymin, ymax = min(ymin, seg.Y), max(ymax, seg.Y)
		}
	}
	return xmin, xmax, ymin, ymax, ok
}

// Labeled returns the series that should appear in a legend.
func (a *Axes) Labeled() []Series {
	var out []Series
	for _, s := range a.Series {
		if s.Label != "" {
			out = append(out, s)
		}
	}
	return out
}
