package chart

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

func TestJobTimelineWithoutGroupby(t *testing.T) {
	opts := DefaultOptions[string]()
	opts.Label = "jobs"

	ax, err := JobTimeline([]string{"b", "a", "b"}, []float64{0, 1, 2}, []float64{3, 4, 5}, nil, opts)
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}

	if len(ax.Series) != 1 {
		t.Fatalf("got %d series, want 1", len(ax.Series))
	}
	s := ax.Series[0]
	if s.Label != "jobs" {
		t.Errorf("Label = %q, want jobs", s.Label)
	}
	if s.Color != defaultColors[0] {
		t.Errorf("Color = %q, want %q", s.Color, defaultColors[0])
	}
	if s.BeginMarker.Name != "bracket-begin" || s.EndMarker.Name != "bracket-end" {
		t.Errorf("markers = %q/%q, want bracket-begin/bracket-end", s.BeginMarker.Name, s.EndMarker.Name)
	}
	if s.MarkerSize != DefaultMarkerSize {
		t.Errorf("MarkerSize = %v, want %v", s.MarkerSize, DefaultMarkerSize)
	}

	want := []Segment{
		{Entry: 0, Y: 1, XMin: 0, XMax: 3},
		{Entry: 1, Y: 0, XMin: 1, XMax: 4},
		{Entry: 2, Y: 1.15, XMin: 2, XMax: 5},
	}
	for i, seg := range s.Segments {
		w := want[i]
		if seg.Entry != w.Entry || seg.XMin != w.XMin || seg.XMax != w.XMax || math.Abs(seg.Y-w.Y) > 1e-9 {
			t.Errorf("Segments[%d] = %+v, want %+v", i, seg, w)
		}
	}

	if !slices.Equal(ax.YTicks, []string{"a", "b"}) {
		t.Errorf("YTicks = %v, want [a b]", ax.YTicks)
	}
	if ax.XLabel != "Time" || ax.YLabel != "Worker" {
		t.Errorf("axis titles = %q/%q, want Time/Worker", ax.XLabel, ax.YLabel)
	}
}

func TestJobTimelineZeroOptionsDefaultsMarkers(t *testing.T) {
	ax, err := JobTimeline([]string{"a", "a"}, []float64{0, 1}, []float64{2, 3}, []string{"x", "y"},
		Options[string]{GroupNum: 2, GroupRadius: 0.3})
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}

	for i, s := range ax.Series {
		if s.BeginMarker.Name != "bracket-begin" || s.EndMarker.Name != "bracket-end" {
			t.Errorf("series %d markers = %q/%q, want bracket-begin/bracket-end", i, s.BeginMarker.Name, s.EndMarker.Name)
		}
		if s.MarkerSize != DefaultMarkerSize {
			t.Errorf("series %d MarkerSize = %v, want %v", i, s.MarkerSize, DefaultMarkerSize)
		}
	}
}

func TestJobTimelineNoneMarkerKept(t *testing.T) {
	none, err := MarkerByName("none")
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions[string]()
	opts.BeginMarker = none

	ax, err := JobTimeline([]string{"a"}, []float64{0}, []float64{1}, nil, opts)
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}
	if got := ax.Series[0].BeginMarker.Name; got != "none" {
		t.Errorf("BeginMarker = %q, want none", got)
	}
}

func TestJobTimelineGrouped(t *testing.T) {
	workers := []int{1, 1, 2, 1}
	begin := []float64{0, 1, 2, 3}
	end := []float64{1, 2, 3, 4}
	groupby := []string{"train", "eval", "train", "eval"}

	opts := DefaultOptions[string]()
	opts.Label = "stage {key}"

	ax, err := JobTimeline(workers, begin, end, groupby, opts)
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}

	if len(ax.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(ax.Series))
	}
	// Sorted key order: eval before train.
	if ax.Series[0].Label != "stage eval" || ax.Series[1].Label != "stage train" {
		t.Errorf("labels = %q, %q", ax.Series[0].Label, ax.Series[1].Label)
	}
	if ax.Series[0].Color == ax.Series[1].Color {
		t.Errorf("partitions share color %q", ax.Series[0].Color)
	}

	var entries []int
	for _, s := range ax.Series {
		for _, seg := range s.Segments {
			entries = append(entries, seg.Entry)
		}
	}
	slices.Sort(entries)
	if !slices.Equal(entries, []int{0, 1, 2, 3}) {
		t.Errorf("entries drawn = %v, want each entry exactly once", entries)
	}

	// Grouping does not change placement: entry 1 is the second job of worker 1.
	seg := ax.Series[0].Segments[0]
	if seg.Entry != 1 || math.Abs(seg.Y-0.15) > 1e-9 {
		t.Errorf("eval first segment = %+v, want entry 1 at y 0.15", seg)
	}
	if !slices.Equal(ax.YTicks, []string{"1", "2"}) {
		t.Errorf("YTicks = %v, want [1 2]", ax.YTicks)
	}
}

func TestJobTimelineLabelFunc(t *testing.T) {
	opts := DefaultOptions[int]()
	opts.Label = "ignored {key}"
	opts.LabelFunc = func(k int) string {
		if k == 0 {
			return "idle"
		}
		return "busy"
	}

	ax, err := JobTimeline([]string{"w", "w"}, []float64{0, 1}, []float64{1, 2}, []int{1, 0}, opts)
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}
	if ax.Series[0].Label != "idle" || ax.Series[1].Label != "busy" {
		t.Errorf("labels = %q, %q, want idle, busy", ax.Series[0].Label, ax.Series[1].Label)
	}
}

func TestJobTimelineKeyAsDefaultLabel(t *testing.T) {
	ax, err := JobTimeline([]string{"w"}, []float64{0}, []float64{1}, []string{"etl"}, DefaultOptions[string]())
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}
	if ax.Series[0].Label != "etl" {
		t.Errorf("Label = %q, want etl", ax.Series[0].Label)
	}
}

func TestJobTimelineContinuesPaletteOnExistingAxes(t *testing.T) {
	ax := NewAxes()
	ax.HLines([]float64{0}, []float64{0}, []float64{1}, nil, SeriesStyle{Color: "#000000"})

	opts := DefaultOptions[string]()
	opts.Axes = ax
	opts.Palette = Cycle([]string{"red", "green", "blue"})

	got, err := JobTimeline([]string{"a", "b"}, []float64{0, 0}, []float64{1, 1}, []string{"x", "y"}, opts)
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}
	if got != ax {
		t.Fatal("JobTimeline() did not draw on the supplied axes")
	}
	if len(ax.Series) != 3 {
		t.Fatalf("got %d series, want 3", len(ax.Series))
	}
	if ax.Series[1].Color != "green" || ax.Series[2].Color != "blue" {
		t.Errorf("colors = %q, %q, want green, blue", ax.Series[1].Color, ax.Series[2].Color)
	}
}

func TestJobTimelineErrors(t *testing.T) {
	tests := []struct {
		name     string
		workers  []int
		begin    []float64
		end      []float64
		groupby  []string
		groupNum int
		code     errors.Code
	}{
		{"length mismatch", []int{1, 2}, []float64{0}, []float64{1}, nil, 2, errors.ErrCodeLengthMismatch},
		{"groupby length", []int{1}, []float64{0}, []float64{1}, []string{"a", "b"}, 2, errors.ErrCodeLengthMismatch},
		{"zero group num", []int{1}, []float64{0}, []float64{1}, nil, 0, errors.ErrCodeInvalidGroupNum},
		{"negative group num", []int{1}, []float64{0}, []float64{1}, nil, -3, errors.ErrCodeInvalidGroupNum},
		{"group num before lengths", []int{1, 2}, []float64{0}, []float64{1}, nil, 0, errors.ErrCodeInvalidGroupNum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := NewAxes()
			opts := DefaultOptions[string]()
			opts.Axes = ax
			opts.GroupNum = tt.groupNum

			_, err := JobTimeline(tt.workers, tt.begin, tt.end, tt.groupby, opts)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
			if len(ax.Series) != 0 || ax.YTicks != nil {
				t.Error("axes modified before validation failed")
			}
		})
	}
}

func TestJobTimelineTimeAxis(t *testing.T) {
	opts := DefaultOptions[string]()
	opts.TimeAxis = true
	ax, err := JobTimeline([]string{"a"}, []float64{1.7e9}, []float64{1.7e9 + 60}, nil, opts)
	if err != nil {
		t.Fatalf("JobTimeline() error: %v", err)
	}
	if !ax.TimeAxis {
		t.Error("TimeAxis not set on axes")
	}
}
