package chart_test

import (
	"fmt"

	"github.com/matzehuels/jobtimeline/pkg/chart"
)

func ExampleJobTimeline() {
	workers := []string{"node-b", "node-a", "node-b"}
	begin := []float64{0, 2, 4}
	end := []float64{3, 6, 8}
	stage := []string{"load", "train", "train"}

	opts := chart.DefaultOptions[string]()
	opts.Label = "{key} jobs"

	ax, err := chart.JobTimeline(workers, begin, end, stage, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ax.YTicks, ax.YLabel, ax.XLabel)
	for _, s := range ax.Series {
		fmt.Printf("%s %s", s.Label, s.Color)
		for _, seg := range s.Segments {
			fmt.Printf(" [%g..%g @ %.2f]", seg.XMin, seg.XMax, seg.Y)
		}
		fmt.Println()
	}
	// Output:
	// [node-a node-b] Worker Time
	// load jobs #1f77b4 [0..3 @ 1.00]
	// train jobs #ff7f0e [2..6 @ 0.00] [4..8 @ 1.15]
}

func ExampleFigureLegend() {
	fig := chart.NewFigure(nil)
	l := chart.FigureLegend(fig, chart.WithLegendColumns(2))
	fmt.Println(l.AnchorX, l.AnchorY, l.Loc, fig.Top, l.Columns)
	// Output: 0.5 0.86 lower center 0.86 2
}
