package pipeline

import (
	"cmp"
	"fmt"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/dataset"
	"github.com/matzehuels/jobtimeline/pkg/errors"
	"github.com/matzehuels/jobtimeline/pkg/timeline"
)

// Draw places every job of tbl on a new figure and applies the figure
// options (size, titles, legend). Numeric worker and group columns are drawn
// with numeric ordering, everything else with string ordering.
func Draw(tbl *dataset.Table, opts Options) (*chart.Figure, error) {
	if tbl == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no job table")
	}

	var (
		ax  *chart.Axes
		err error
	)
	if tbl.NumericWorkers {
		ax, err = drawWorkers(tbl.WorkerNumbers(), tbl, opts)
	} else {
		ax, err = drawWorkers(tbl.Workers, tbl, opts)
	}
	if err != nil {
		return nil, err
	}

	ax.Title = opts.Title
	if opts.XLabel != "" {
		ax.SetXLabel(opts.XLabel)
	}
	if opts.YLabel != "" {
		ax.SetYLabel(opts.YLabel)
	}

	fig := chart.NewFigure(ax)
	if opts.Width > 0 {
		fig.Width = opts.Width
	}
	if opts.Height > 0 {
		fig.Height = opts.Height
	}
	if opts.Legend.Enabled {
		chart.FigureLegend(fig,
			chart.WithLegendColumns(opts.Legend.Columns),
			chart.WithLegendFontSize(opts.Legend.FontSize),
			chart.WithLegendFrame(opts.Legend.Frame),
			chart.WithLegendTitle(opts.Legend.Title),
		)
	}
	return fig, nil
}

func drawWorkers[W cmp.Ordered](workers []W, tbl *dataset.Table, opts Options) (*chart.Axes, error) {
	switch {
	case !tbl.HasGroups():
		return drawTimeline[W, string](workers, nil, tbl, opts)
	case tbl.NumericGroups:
		return drawTimeline(workers, tbl.GroupNumbers(), tbl, opts)
	default:
		return drawTimeline(workers, tbl.Groups, tbl, opts)
	}
}

func drawTimeline[W, K cmp.Ordered](workers []W, groups []K, tbl *dataset.Table, opts Options) (*chart.Axes, error) {
	copts := chart.DefaultOptions[K]()
	copts.GroupNum = opts.GroupNum
	copts.GroupRadius = opts.GroupRadius
	copts.Label = opts.Label
	copts.TimeAxis = tbl.TimeAxis
	if opts.MarkerSize > 0 {
		copts.MarkerSize = opts.MarkerSize
	}

	var err error
	if copts.BeginMarker, err = chart.MarkerByName(cmp.Or(opts.MarkerBegin, chart.BracketBegin().Name)); err != nil {
		return nil, err
	}
	if copts.EndMarker, err = chart.MarkerByName(cmp.Or(opts.MarkerEnd, chart.BracketEnd().Name)); err != nil {
		return nil, err
	}
	if len(opts.Palette) > 0 {
		if copts.Palette, err = chart.ParsePalette(opts.Palette); err != nil {
			return nil, err
		}
	}

	return chart.JobTimeline(workers, tbl.Begin, tbl.End, groups, copts)
}

// =============================================================================
// Layout Report
// =============================================================================

// Placement is the computed position of one job.
type Placement struct {
	Entry    int     `json:"entry"`
	Worker   string  `json:"worker"`
	Group    *string `json:"group,omitempty"`
	Begin    float64 `json:"begin"`
	End      float64 `json:"end"`
	Row      int     `json:"row"`
	Offset   int     `json:"offset"`
	Position float64 `json:"position"`
}

// Report is the layout of a job table without any drawing.
type Report struct {
	GroupNum    int         `json:"group_num"`
	GroupRadius float64     `json:"group_radius"`
	Workers     []string    `json:"workers"`
	Placements  []Placement `json:"placements"`
}

// ComputeLayout places every job of tbl and reports rows, wave offsets and
// final positions in input order. Numeric worker and group values are
// reported in the same canonical form as the axis and legend labels, so
// "1" and "1.0" both appear as "1".
func ComputeLayout(tbl *dataset.Table, opts Options) (*Report, error) {
	if tbl == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no job table")
	}
	if tbl.NumericWorkers {
		return report(tbl.WorkerNumbers(), tbl, opts)
	}
	return report(tbl.Workers, tbl, opts)
}

func report[W cmp.Ordered](workers []W, tbl *dataset.Table, opts Options) (*Report, error) {
	layout, err := timeline.Compute(workers, tbl.Begin, tbl.End, opts.TimelineOptions())
	if err != nil {
		return nil, err
	}

	rep := &Report{
		GroupNum:    layout.GroupNum,
		GroupRadius: layout.GroupRadius,
		Workers:     layout.Axis.Labels(nil),
		Placements:  make([]Placement, layout.Len()),
	}
	groups := tbl.Groups
	if tbl.NumericGroups {
		groups = make([]string, len(tbl.Groups))
		for i, g := range tbl.GroupNumbers() {
			groups[i] = fmt.Sprint(g)
		}
	}
	for i := range rep.Placements {
		p := Placement{
			Entry:    i,
			Worker:   rep.Workers[layout.Rows[i]],
			Begin:    tbl.Begin[i],
			End:      tbl.End[i],
			Row:      layout.Rows[i],
			Offset:   layout.Offsets[i],
			Position: layout.Positions[i],
		}
		if tbl.HasGroups() {
			p.Group = &groups[i]
		}
		rep.Placements[i] = p
	}
	return rep, nil
}
