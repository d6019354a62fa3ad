package sink

import (
	"encoding/json"

	"github.com/matzehuels/jobtimeline/pkg/chart"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style     string
	seed      uint64
	tickCount int
}

// WithJSONStyle records the style name (e.g., "simple", "handdrawn") in the
// output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the hand-drawn seed in the output.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONTickCount sets the approximate number of exported x ticks.
func WithJSONTickCount(n int) JSONOption { return func(r *jsonRenderer) { r.tickCount = n } }

type jsonOutput struct {
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Top      float64      `json:"top"`
	Style    string       `json:"style,omitempty"`
	Seed     uint64       `json:"seed,omitempty"`
	Title    string       `json:"title,omitempty"`
	XLabel   string       `json:"x_label"`
	YLabel   string       `json:"y_label"`
	TimeAxis bool         `json:"time_axis,omitempty"`
	YTicks   []string     `json:"y_ticks"`
	XTicks   []jsonTick   `json:"x_ticks"`
	Series   []jsonSeries `json:"series"`
	Legend   *jsonLegend  `json:"legend,omitempty"`
}

type jsonTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type jsonSeries struct {
	Label       string        `json:"label,omitempty"`
	Color       string        `json:"color"`
	BeginMarker string        `json:"begin_marker,omitempty"`
	EndMarker   string        `json:"end_marker,omitempty"`
	MarkerSize  float64       `json:"marker_size"`
	Segments    []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	Entry int     `json:"entry"`
	Y     float64 `json:"y"`
	Begin float64 `json:"begin"`
	End   float64 `json:"end"`
}

type jsonLegend struct {
	AnchorX  float64 `json:"anchor_x"`
	AnchorY  float64 `json:"anchor_y"`
	Loc      string  `json:"loc"`
	Columns  int     `json:"columns,omitempty"`
	FontSize float64 `json:"font_size"`
	Frame    bool    `json:"frame"`
	Title    string  `json:"title,omitempty"`
}

// RenderJSON exports the figure's drawn content as indented JSON.
func RenderJSON(fig *chart.Figure, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{tickCount: chart.DefaultTickCount}
	for _, opt := range opts {
		opt(&r)
	}

	ax := fig.Axes
	if ax == nil {
		ax = chart.NewAxes()
	}

	out := jsonOutput{
		Width:    fig.Width,
		Height:   fig.Height,
		Top:      fig.Top,
		Style:    r.style,
		Seed:     r.seed,
		Title:    ax.Title,
		XLabel:   ax.XLabel,
		YLabel:   ax.YLabel,
		TimeAxis: ax.TimeAxis,
		YTicks:   ax.YTicks,
		XTicks:   []jsonTick{},
		Series:   make([]jsonSeries, 0, len(ax.Series)),
	}
	if out.YTicks == nil {
		out.YTicks = []string{}
	}
	for _, t := range XTicks(ax, r.tickCount) {
		out.XTicks = append(out.XTicks, jsonTick{Value: t.Value, Label: t.Label})
	}

	for _, s := range ax.Series {
		js := jsonSeries{
			Label:       s.Label,
			Color:       s.Color,
			BeginMarker: s.BeginMarker.Name,
			EndMarker:   s.EndMarker.Name,
			MarkerSize:  s.MarkerSize,
			Segments:    make([]jsonSegment, len(s.Segments)),
		}
		for i, seg := range s.Segments {
			js.Segments[i] = jsonSegment{Entry: seg.Entry, Y: seg.Y, Begin: seg.XMin, End: seg.XMax}
		}
		out.Series = append(out.Series, js)
	}

	if l := fig.Legend; l != nil {
		out.Legend = &jsonLegend{
			AnchorX:  l.AnchorX,
			AnchorY:  l.AnchorY,
			Loc:      string(l.Loc),
			Columns:  l.Columns,
			FontSize: l.FontSize,
			Frame:    l.Frame,
			Title:    l.Title,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
