// Package pkg provides the core libraries for jobtimeline, a Gantt-style
// layout engine for jobs running on workers.
//
// # Overview
//
// A job is a (worker, begin, end) triple with an optional group key. Every
// worker gets one row; jobs sharing a worker are spread around the row by a
// triangular offset wave so overlapping bars stay readable. The pkg
// directory is organized into four areas:
//
//  1. [timeline] - Row assignment, partitioning and the offset wave
//  2. [chart] - Figures, axes, markers, palettes and legends
//  3. [dataset] - CSV and JSON job tables
//  4. [pipeline] - Orchestration (load → layout → render)
//
// # Architecture
//
//	CSV / JSON job table
//	         ↓
//	    [dataset] package (columns → typed table)
//	         ↓
//	    [timeline] package (rows + wave offsets)
//	         ↓
//	    [chart] package (one series per group, legend)
//	         ↓
//	    [chart/sink] package (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
//	workers := []string{"w1", "w1", "w2"}
//	begin := []float64{0, 1, 2}
//	end := []float64{4, 3, 6}
//	groups := []string{"build", "test", "build"}
//
//	opts := chart.DefaultOptions[string]()
//	ax, err := chart.JobTimeline(workers, begin, end, groups, opts)
//	if err != nil {
//	    return err
//	}
//	fig := chart.NewFigure(ax)
//	chart.FigureLegend(fig)
//	svg := sink.RenderSVG(fig)
//
// # Supporting Packages
//
// [config] - TOML, YAML and JSON option files shared by the CLI and the API.
//
// [errors] - Coded errors so every entry point reports failures the same way.
//
// [render] - SVG to PDF/PNG conversion through rsvg-convert.
//
// [observability] - Hooks for pipeline stages and HTTP requests.
//
// [buildinfo] - Version information injected at build time.
//
// [timeline]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/timeline
// [chart]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/chart
// [chart/sink]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/chart/sink
// [dataset]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/dataset
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/errors
// [render]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/render
// [observability]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/jobtimeline/pkg/buildinfo
package pkg
