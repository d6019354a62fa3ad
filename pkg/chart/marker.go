package chart

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// DefaultMarkerSize is the marker diameter in pixels.
const DefaultMarkerSize = 8.0

// Point is a vertex in marker units: the marker spans [-1, 1] on both axes,
// y pointing up.
type Point struct{ X, Y float64 }

// Marker is a shape drawn at a segment end. Markers are stroked, never filled.
type Marker struct {
	Name string

	// Path is drawn as one polyline through the vertices.
	Path []Point

	// Closed joins the last vertex back to the first.
	Closed bool

	// Circle draws a circle of radius 1 instead of Path.
	Circle bool
}

// IsZero reports whether m is the zero Marker.
func (m Marker) IsZero() bool {
	return m.Name == "" && len(m.Path) == 0 && !m.Circle
}

// BracketBegin is an opening bracket with ticks pointing back in time.
// It marks where a job starts.
func BracketBegin() Marker {
	return Marker{
		Name: "bracket-begin",
		Path: []Point{
			{-0.5, 0.866},
			{0, 0},
			{0, 1},
			{0, -1},
			{0, 0},
			{-0.5, -0.866},
			{0, 0},
		},
	}
}

// BracketEnd mirrors BracketBegin and marks where a job ends.
func BracketEnd() Marker {
	return Marker{
		Name: "bracket-end",
		Path: []Point{
			{0.5, 0.866},
			{0, 0},
			{0, 1},
			{0, -1},
			{0, 0},
			{0.5, -0.866},
			{0, 0},
		},
	}
}

var markers = map[string]func() Marker{
	"bracket-begin": BracketBegin,
	"bracket-end":   BracketEnd,
	"circle":        func() Marker { return Marker{Name: "circle", Circle: true} },
	"square": func() Marker {
		return Marker{Name: "square", Closed: true, Path: []Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}}
	},
	"triangle": func() Marker {
		return Marker{Name: "triangle", Closed: true, Path: []Point{{0, 1}, {1, -1}, {-1, -1}}}
	},
	"diamond": func() Marker {
		return Marker{Name: "diamond", Closed: true, Path: []Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}}
	},
	"tick": func() Marker {
		return Marker{Name: "tick", Path: []Point{{0, 1}, {0, -1}}}
	},
	"none": func() Marker { return Marker{Name: "none"} },
}

// MarkerNames lists the names accepted by MarkerByName.
func MarkerNames() []string {
	return slices.Sorted(maps.Keys(markers))
}

// MarkerByName returns a named marker. Names are case-insensitive.
func MarkerByName(name string) (Marker, error) {
	fn, ok := markers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Marker{}, errors.New(errors.ErrCodeInvalidMarker,
			"unknown marker %q (must be one of: %s)", name, strings.Join(MarkerNames(), ", "))
	}
	return fn(), nil
}
