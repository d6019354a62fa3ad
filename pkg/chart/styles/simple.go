package styles

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	simpleFont        = "Helvetica, Arial, sans-serif"
	simpleStrokeWidth = 2.0
	simpleMarkerWidth = 1.5
)

// Simple draws crisp lines with no filters.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderSegment(buf *bytes.Buffer, s Segment) {
	fmt.Fprintf(buf, `  <line class="job series-%d" id="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		s.Series, s.ID(), s.X1, s.Y, s.X2, s.Y, EscapeXML(s.Color), simpleStrokeWidth)
}

func (Simple) RenderMarker(buf *bytes.Buffer, m Marker) {
	if m.Shape.Circle {
		fmt.Fprintf(buf, `  <circle class="marker" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			m.X, m.Y, m.Size/2, EscapeXML(m.Color), simpleMarkerWidth)
		return
	}
	pts := ShapePoints(m)
	if len(pts) == 0 {
		return
	}
	var d strings.Builder
	for i, p := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.2f,%.2f ", cmd, p.X, p.Y)
	}
	if m.Shape.Closed {
		d.WriteString("Z")
	}
	fmt.Fprintf(buf, `  <path class="marker" d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linejoin="miter"/>`+"\n",
		strings.TrimSpace(d.String()), EscapeXML(m.Color), simpleMarkerWidth)
}

func (Simple) RenderText(buf *bytes.Buffer, t Text) {
	writeText(buf, t, simpleFont)
}

func (Simple) RenderRect(buf *bytes.Buffer, r Rect) {
	fill := r.Fill
	if fill == "" {
		fill = "none"
	}
	stroke := r.Stroke
	if stroke == "" {
		stroke = "none"
	}
	fmt.Fprintf(buf, `  <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
		EscapeXML(r.Class), r.X, r.Y, r.W, r.H, EscapeXML(fill), EscapeXML(stroke))
}
