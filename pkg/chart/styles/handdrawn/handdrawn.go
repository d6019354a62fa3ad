package handdrawn

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/chart/styles"
)

const (
	fontFamily  = `xkcd Script, Humor Sans, Comic Sans MS, cursive`
	strokeWidth = 2.5
	markerWidth = 1.8
	bend        = 1.6 // max vertical drift of a bar midpoint, in pixels
	shake       = 0.8 // max vertex jitter, in pixels
	filterID    = "hd-wobble"
)

// HandDrawn is a seeded sketch style.
type HandDrawn struct {
	seed uint64
}

// New returns a hand-drawn style. Equal seeds give equal output.
func New(seed uint64) *HandDrawn {
	return &HandDrawn{seed: seed}
}

func (h *HandDrawn) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <filter id="%s" x="-5%%" y="-5%%" width="110%%" height="110%%">
      <feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="2" seed="%d"/>
      <feDisplacementMap in="SourceGraphic" scale="1.5"/>
    </filter>
  </defs>
`, filterID, h.seed%1000)
}

func (h *HandDrawn) RenderSegment(buf *bytes.Buffer, s styles.Segment) {
	key := s.ID()
	y1 := s.Y + h.jitter(key, 0)*shake
	y2 := s.Y + h.jitter(key, 1)*shake
	mx := (s.X1 + s.X2) / 2
	my := s.Y + h.jitter(key, 2)*bend
	fmt.Fprintf(buf, `  <path class="job series-%d" id="%s" d="M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round" filter="url(#%s)"/>`+"\n",
		s.Series, key, s.X1, y1, mx, my, s.X2, y2, styles.EscapeXML(s.Color), strokeWidth, filterID)
}

func (h *HandDrawn) RenderMarker(buf *bytes.Buffer, m styles.Marker) {
	key := fmt.Sprintf("marker-%d-%.0f", m.Entry, m.X)
	if m.Shape.Circle {
		r := m.Size/2 + h.jitter(key, 0)*shake/2
		fmt.Fprintf(buf, `  <ellipse class="marker" cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			m.X, m.Y, r, m.Size/2, styles.EscapeXML(m.Color), markerWidth)
		return
	}
	pts := styles.ShapePoints(m)
	if len(pts) == 0 {
		return
	}
	fmt.Fprintf(buf, `  <path class="marker" d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		h.polyline(key, pts, m.Shape.Closed), styles.EscapeXML(m.Color), markerWidth)
}

func (h *HandDrawn) RenderText(buf *bytes.Buffer, t styles.Text) {
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" text-anchor="%s" fill="#222"`,
		styles.EscapeXML(t.Class), t.X, t.Y, fontFamily, t.Size, anchorOf(t))
	if t.Rotate != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.1f %.2f %.2f)"`, t.Rotate, t.X, t.Y)
	}
	fmt.Fprintf(buf, ">%s</text>\n", styles.EscapeXML(t.Content))
}

func (h *HandDrawn) RenderRect(buf *bytes.Buffer, r styles.Rect) {
	fill := r.Fill
	if fill == "" {
		fill = "none"
	}
	stroke := r.Stroke
	if stroke == "" {
		stroke = "none"
	}
	fmt.Fprintf(buf, `  <path class="%s" d="%s" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
		styles.EscapeXML(r.Class), wobbledRect(r.X, r.Y, r.W, r.H, h.seed, r.Class),
		styles.EscapeXML(fill), styles.EscapeXML(stroke))
}

func anchorOf(t styles.Text) styles.Anchor {
	if t.Anchor == "" {
		return styles.AnchorStart
	}
	return t.Anchor
}

func (h *HandDrawn) polyline(key string, pts []chart.Point, closed bool) string {
	var d strings.Builder
	for i, p := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.2f,%.2f ", cmd,
			p.X+h.jitter(key, 2*i)*shake/2, p.Y+h.jitter(key, 2*i+1)*shake/2)
	}
	if closed {
		d.WriteString("Z")
	}
	return strings.TrimSpace(d.String())
}

func (h *HandDrawn) jitter(key string, i int) float64 {
	return jitter(h.seed, key, i)
}

// jitter returns a deterministic value in [-1, 1] for (seed, key, i).
func jitter(seed uint64, key string, i int) float64 {
	hash := fnv.New64a()
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], seed)
	binary.LittleEndian.PutUint64(b[8:], uint64(i))
	hash.Write(b[:])
	hash.Write([]byte(key))
	return float64(hash.Sum64()%20001)/10000 - 1
}

// wobbledRect returns a closed path around the rectangle whose edges bow
// slightly outwards or inwards.
func wobbledRect(x, y, w, h float64, seed uint64, key string) string {
	amp := min(shake*2, min(w, h)/8)
	c := func(i int) float64 { return jitter(seed, key, i) * amp }
	return fmt.Sprintf("M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f Q%.2f,%.2f %.2f,%.2f Q%.2f,%.2f %.2f,%.2f Q%.2f,%.2f %.2f,%.2f Z",
		x+c(0), y+c(1),
		x+w/2, y+c(2), x+w+c(3), y+c(4),
		x+w+c(5), y+h/2, x+w+c(6), y+h+c(7),
		x+w/2, y+h+c(8), x+c(9), y+h+c(10),
		x+c(11), y+h/2, x+c(0), y+c(1),
	)
}
