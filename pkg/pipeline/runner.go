package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jobtimeline/pkg/dataset"
	"github.com/matzehuels/jobtimeline/pkg/observability"
)

// Runner encapsulates pipeline execution.
// Both CLI and API use this to load, draw and render the same way.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline on opts.Input.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	tbl, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	result, err := r.ExecuteTable(ctx, tbl, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// ExecuteTable runs the layout → render stages on an already loaded table.
func (r *Runner) ExecuteTable(ctx context.Context, tbl *dataset.Table, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Table: tbl}
	result.Stats.Jobs = tbl.Len()

	// Stage 2: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, tbl.Len())
	layoutStart := time.Now()
	fig, err := Draw(tbl, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, result.Stats.LayoutTime, err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Figure = fig
	result.Stats.Workers = len(fig.Axes.YTicks)
	result.Stats.Partitions = len(fig.Axes.Series)
	hooks.OnLayoutComplete(ctx, result.Stats.Workers, result.Stats.Partitions, result.Stats.LayoutTime, nil)

	opts.Logger.Info("computed layout",
		"jobs", result.Stats.Jobs,
		"workers", result.Stats.Workers,
		"partitions", result.Stats.Partitions,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, err := Render(ctx, fig, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the job table named by opts.Input and logs its warnings.
func (r *Runner) Load(ctx context.Context, opts Options) (*dataset.Table, error) {
	opts.Columns.SetDefaults()
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()
	tbl, err := dataset.Load(ctx, opts.Input, opts.DatasetOptions())
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Input, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, opts.Input, tbl.Len(), time.Since(start), nil)

	opts.Logger.Info("loaded jobs",
		"source", opts.Input,
		"jobs", tbl.Len(),
		"time_axis", tbl.TimeAxis,
		"duration", time.Since(start))
	for _, w := range tbl.Warnings() {
		opts.Logger.Warn(w, "source", opts.Input)
	}
	return tbl, nil
}

// Layout loads opts.Input and computes its layout report.
func (r *Runner) Layout(ctx context.Context, opts Options) (*Report, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	tbl, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return ComputeLayout(tbl, opts)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
