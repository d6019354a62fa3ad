// Package chart is the drawing surface for job timelines.
//
// # Overview
//
// A [Figure] holds one [Axes] plus an optional [Legend]. Axes record draw
// calls as [Series]: each series is one styled group of horizontal segments
// with a begin and an end [Marker] per segment. Sinks in the [sink]
// subpackage turn a Figure into SVG, PNG, PDF or JSON.
//
// # Job Timelines
//
// [JobTimeline] lays out parallel worker/begin/end sequences with
// [timeline.ComputeGrouped] and draws one series per partition:
//
//	ax, err := chart.JobTimeline(workers, begin, end, groups, chart.DefaultOptions[string]())
//	fig := chart.NewFigure(ax)
//	chart.FigureLegend(fig)
//	svg := sink.RenderSVG(fig)
//
// Colors come from an explicit [Palette] indexed by series number, never
// from state hidden in the Axes.
//
// [sink]: github.com/matzehuels/jobtimeline/pkg/chart/sink
package chart
