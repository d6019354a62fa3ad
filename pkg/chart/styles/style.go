package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/jobtimeline/pkg/chart"
)

// Style defines the visual appearance of a rendered timeline.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, fonts).
	RenderDefs(buf *bytes.Buffer)
	// RenderSegment writes one job bar.
	RenderSegment(buf *bytes.Buffer, s Segment)
	// RenderMarker writes the marker at one end of a job bar.
	RenderMarker(buf *bytes.Buffer, m Marker)
	// RenderText writes a tick label, axis title or legend entry.
	RenderText(buf *bytes.Buffer, t Text)
	// RenderRect writes a frame such as the plot border or legend box.
	RenderRect(buf *bytes.Buffer, r Rect)
}

// Segment is a horizontal job bar in pixel space.
type Segment struct {
	Entry  int    // input index of the job
	Series int    // index of the series the job belongs to
	X1, X2 float64
	Y      float64
	Color  string
}

// ID is the element id of the bar. Entry indices restart with every
// JobTimeline call, so the series number keeps ids unique on shared Axes.
func (s Segment) ID() string {
	return fmt.Sprintf("job-%d-%d", s.Series, s.Entry)
}

// Marker is a marker placed at (X, Y) with the given diameter.
type Marker struct {
	Entry int
	Shape chart.Marker
	X, Y  float64
	Size  float64
	Color string
}

// Anchor is the SVG text-anchor value.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a single line of text. Rotate is in degrees around (X, Y).
type Text struct {
	Class   string
	Content string
	X, Y    float64
	Size    float64
	Anchor  Anchor
	Rotate  float64
}

// Rect is an axis-aligned frame. An empty Fill means no fill.
type Rect struct {
	Class      string
	X, Y, W, H float64
	Fill       string
	Stroke     string
}

// ShapePoints converts a marker shape to pixel vertices. Shape units span
// [-1, 1] with y up; SVG y points down.
func ShapePoints(m Marker) []chart.Point {
	r := m.Size / 2
	pts := make([]chart.Point, len(m.Shape.Path))
	for i, p := range m.Shape.Path {
		pts[i] = chart.Point{X: m.X + p.X*r, Y: m.Y - p.Y*r}
	}
	return pts
}
