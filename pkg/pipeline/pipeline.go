// Package pipeline provides the load → layout → render pipeline for jobtimeline.
//
// This package implements the complete pipeline used by the CLI and the
// HTTP API, so both entry points validate, draw and render the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a job table from CSV or JSON (see the dataset package)
//  2. Layout: place every job with the timeline wave and draw it on a figure
//  3. Render: write the figure in the requested formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Input = "jobs.csv"
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/config"
	"github.com/matzehuels/jobtimeline/pkg/dataset"
	"github.com/matzehuels/jobtimeline/pkg/errors"
	"github.com/matzehuels/jobtimeline/pkg/timeline"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Style constants for visual styles.
const (
	StyleSimple    = config.StyleSimple
	StyleHanddrawn = config.StyleHanddrawn
)

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple:    true,
	StyleHanddrawn: true,
}

// DefaultStyle is the default visual style.
const DefaultStyle = StyleSimple

// Options contains all configuration for the timeline pipeline.
type Options struct {
	// Load options
	Input       string          `json:"-"`
	InputFormat dataset.Format  `json:"input_format,omitempty"`
	Columns     dataset.Columns `json:"columns,omitempty"`
	NoGroup     bool            `json:"no_group,omitempty"`

	// Layout options
	GroupNum    int      `json:"group_num"`
	GroupRadius float64  `json:"group_radius"`
	Label       string   `json:"label,omitempty"`
	MarkerBegin string   `json:"marker_begin,omitempty"`
	MarkerEnd   string   `json:"marker_end,omitempty"`
	MarkerSize  float64  `json:"marker_size,omitempty"`
	Palette     []string `json:"palette,omitempty"`

	// Figure options
	Width  float64       `json:"width,omitempty"`
	Height float64       `json:"height,omitempty"`
	Title  string        `json:"title,omitempty"`
	XLabel string        `json:"x_label,omitempty"`
	YLabel string        `json:"y_label,omitempty"`
	Legend config.Legend `json:"legend"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Style      string   `json:"style,omitempty"`
	Seed       uint64   `json:"seed,omitempty"`
	Background string   `json:"background,omitempty"`

	// Runtime options (not serialized)
	// Logger overrides the runner's logger for one run.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns the options of config.Default.
func DefaultOptions() Options {
	return FromConfig(config.Default())
}

// FromConfig converts file-level settings into pipeline options.
func FromConfig(c config.Config) Options {
	return Options{
		Columns:     c.Columns,
		NoGroup:     c.NoGroup,
		GroupNum:    int(c.GroupNum),
		GroupRadius: c.GroupRadius,
		Label:       c.Label,
		MarkerBegin: c.MarkerBegin,
		MarkerEnd:   c.MarkerEnd,
		MarkerSize:  c.MarkerSize,
		Palette:     c.Palette,
		Width:       c.Width,
		Height:      c.Height,
		Title:       c.Title,
		XLabel:      c.XLabel,
		YLabel:      c.YLabel,
		Legend:      c.Legend,
		Formats:     c.Formats,
		Style:       c.Style,
		Seed:        c.Seed,
		Background:  c.Background,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the loaded job table.
	Table *dataset.Table

	// Figure is the drawn timeline.
	Figure *chart.Figure

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Jobs       int
	Workers    int
	Partitions int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates every stage.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
//
// GroupNum and GroupRadius are never defaulted: zero is a real value
// (rejected for GroupNum, "no fan-out" for GroupRadius).
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	o.Columns.SetDefaults()
	if o.MarkerBegin == "" {
		o.MarkerBegin = chart.BracketBegin().Name
	}
	if o.MarkerEnd == "" {
		o.MarkerEnd = chart.BracketEnd().Name
	}
	if o.Width == 0 {
		o.Width = chart.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = chart.DefaultHeight
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := timeline.ValidateGroupNum(o.GroupNum); err != nil {
		return err
	}
	if !nonNegative(o.GroupRadius) {
		return errors.New(errors.ErrCodeInvalidInput, "group_radius must be a non-negative number, got %v", o.GroupRadius)
	}
	if !nonNegative(o.Width) || !nonNegative(o.Height) {
		return errors.New(errors.ErrCodeInvalidInput, "figure size must be positive, got %vx%v", o.Width, o.Height)
	}
	if !nonNegative(o.MarkerSize) {
		return errors.New(errors.ErrCodeInvalidInput, "marker_size must be a non-negative number, got %v", o.MarkerSize)
	}
	if _, err := chart.MarkerByName(o.MarkerBegin); err != nil {
		return err
	}
	if _, err := chart.MarkerByName(o.MarkerEnd); err != nil {
		return err
	}
	_, err := chart.ParsePalette(o.Palette)
	return err
}

// nonNegative reports whether v is finite and not below zero.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Background != "" {
		return errors.ValidateColor(o.Background)
	}
	return nil
}

// TimelineOptions returns the layout parameters.
func (o *Options) TimelineOptions() timeline.Options {
	return timeline.Options{GroupNum: o.GroupNum, GroupRadius: o.GroupRadius}
}

// DatasetOptions returns the options for dataset.Load and dataset.Read.
func (o *Options) DatasetOptions() dataset.Options {
	return dataset.Options{Format: o.InputFormat, Columns: o.Columns, NoGroup: o.NoGroup}
}
