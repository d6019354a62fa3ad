package chart

import (
	"cmp"

	"github.com/matzehuels/jobtimeline/pkg/timeline"
)

// Options configures JobTimeline. Start from DefaultOptions.
type Options[K cmp.Ordered] struct {
	// Axes receives the draw calls. A nil Axes is created.
	Axes *Axes

	// Label is the fixed label of the single series drawn without groupby.
	// With groupby it is the label template (see TemplateLabel) unless
	// LabelFunc is set.
	Label string

	// LabelFunc formats the label of each group.
	LabelFunc func(K) string

	GroupNum    int
	GroupRadius float64

	// Zero markers draw brackets; MarkerByName("none") omits them.
	BeginMarker Marker
	EndMarker   Marker
	MarkerSize  float64

	// Palette colors the series. Numbering continues after any series
	// already on Axes.
	Palette Palette

	// TimeAxis marks begin and end as Unix seconds.
	TimeAxis bool
}

// DefaultOptions returns group_num 2, group_radius 0.3, bracket markers of
// size 8 and the default palette.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		GroupNum:    timeline.DefaultGroupNum,
		GroupRadius: timeline.DefaultGroupRadius,
		BeginMarker: BracketBegin(),
		EndMarker:   BracketEnd(),
		MarkerSize:  DefaultMarkerSize,
		Palette:     DefaultPalette(),
	}
}

// JobTimeline draws one horizontal segment per job, from begin to end at the
// worker's row, fanned out by the timeline wave so that jobs of the same
// worker do not overlap.
//
// A nil groupby draws every job as one series labelled opts.Label. Otherwise
// one series is drawn per distinct group key, in sorted key order.
//
// The y ticks are replaced by the sorted distinct workers and the axis
// titles are set to "Worker" and "Time". Inputs are validated before
// anything is drawn.
func JobTimeline[W, K cmp.Ordered](workers []W, begin, end []float64, groupby []K, opts Options[K]) (*Axes, error) {
	lopts := timeline.Options{GroupNum: opts.GroupNum, GroupRadius: opts.GroupRadius}

	var (
		layout *timeline.Layout[W]
		parts  []timeline.Partition[K]
		err    error
	)
	if groupby == nil {
		layout, err = timeline.Compute(workers, begin, end, lopts)
		if err == nil {
			parts = timeline.Single[K](len(workers))
		}
	} else {
		layout, parts, err = timeline.ComputeGrouped(workers, begin, end, groupby, lopts)
	}
	if err != nil {
		return nil, err
	}

	ax := opts.Axes
	if ax == nil {
		ax = NewAxes()
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	beginMarker, endMarker := opts.BeginMarker, opts.EndMarker
	if beginMarker.IsZero() {
		beginMarker = BracketBegin()
	}
	if endMarker.IsZero() {
		endMarker = BracketEnd()
	}
	markerSize := opts.MarkerSize
	if markerSize <= 0 {
		markerSize = DefaultMarkerSize
	}
	label := opts.LabelFunc
	if label == nil {
		label = TemplateLabel[K](opts.Label)
	}

	first := len(ax.Series)
	for i, p := range parts {
		y := make([]float64, len(p.Indices))
		xmin := make([]float64, len(p.Indices))
		xmax := make([]float64, len(p.Indices))
		for j, idx := range p.Indices {
			y[j] = layout.Positions[idx]
			xmin[j] = begin[idx]
			xmax[j] = end[idx]
		}

		style := SeriesStyle{
			Label:       opts.Label,
			Color:       palette(first + i),
			BeginMarker: beginMarker,
			EndMarker:   endMarker,
			MarkerSize:  markerSize,
		}
		if groupby != nil {
			style.Label = label(p.Key)
		}
		ax.HLines(y, xmin, xmax, p.Indices, style)
	}

	ax.SetYTicks(layout.Axis.Labels(nil))
	ax.SetXLabel(DefaultXLabel)
	ax.SetYLabel(DefaultYLabel)
	ax.TimeAxis = ax.TimeAxis || opts.TimeAxis
	return ax, nil
}
