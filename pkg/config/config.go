// Package config loads render defaults from TOML, YAML or JSON files.
//
// Settings are layered: [Default] values, then a config file, then explicit
// command-line flags. Decoding happens on top of Default, so keys missing
// from a file keep their default value and a present zero (such as
// group_radius = 0) is honoured.
//
//	# jobtimeline.toml
//	group_num = 3
//	group_radius = 0.25
//	label = "stage {key}"
//	style = "handdrawn"
//
//	[legend]
//	enabled = true
//	columns = 4
package config

import (
	"math"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/dataset"
	"github.com/matzehuels/jobtimeline/pkg/errors"
	"github.com/matzehuels/jobtimeline/pkg/timeline"
)

// Config holds every tunable of a render.
type Config struct {
	GroupNum    GroupNum `toml:"group_num" yaml:"group_num" json:"group_num"`
	GroupRadius float64  `toml:"group_radius" yaml:"group_radius" json:"group_radius"`

	// Label is the fixed series label, or the group label template.
	Label   string `toml:"label" yaml:"label" json:"label"`
	NoGroup bool   `toml:"no_group" yaml:"no_group" json:"no_group"`

	Width      float64  `toml:"width" yaml:"width" json:"width"`
	Height     float64  `toml:"height" yaml:"height" json:"height"`
	Style      string   `toml:"style" yaml:"style" json:"style"`
	Seed       uint64   `toml:"seed" yaml:"seed" json:"seed"`
	Palette    []string `toml:"palette" yaml:"palette" json:"palette"`
	Background string   `toml:"background" yaml:"background" json:"background"`

	MarkerBegin string  `toml:"marker_begin" yaml:"marker_begin" json:"marker_begin"`
	MarkerEnd   string  `toml:"marker_end" yaml:"marker_end" json:"marker_end"`
	MarkerSize  float64 `toml:"marker_size" yaml:"marker_size" json:"marker_size"`

	XLabel string `toml:"x_label" yaml:"x_label" json:"x_label"`
	YLabel string `toml:"y_label" yaml:"y_label" json:"y_label"`
	Title  string `toml:"title" yaml:"title" json:"title"`

	Legend  Legend          `toml:"legend" yaml:"legend" json:"legend"`
	Formats []string        `toml:"formats" yaml:"formats" json:"formats"`
	Columns dataset.Columns `toml:"columns" yaml:"columns" json:"columns"`
}

// Legend configures the figure legend.
type Legend struct {
	Enabled  bool    `toml:"enabled" yaml:"enabled" json:"enabled"`
	Columns  int     `toml:"columns" yaml:"columns" json:"columns"`
	FontSize float64 `toml:"font_size" yaml:"font_size" json:"font_size"`
	Frame    bool    `toml:"frame" yaml:"frame" json:"frame"`
	Title    string  `toml:"title" yaml:"title" json:"title"`
}

const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// Default mirrors the library defaults.
func Default() Config {
	return Config{
		GroupNum:    timeline.DefaultGroupNum,
		GroupRadius: timeline.DefaultGroupRadius,
		Width:       chart.DefaultWidth,
		Height:      chart.DefaultHeight,
		Style:       StyleSimple,
		MarkerBegin: chart.BracketBegin().Name,
		MarkerEnd:   chart.BracketEnd().Name,
		MarkerSize:  chart.DefaultMarkerSize,
		XLabel:      chart.DefaultXLabel,
		YLabel:      chart.DefaultYLabel,
		Legend:      Legend{FontSize: 12, Frame: true},
		Formats:     []string{"svg"},
		Columns:     dataset.DefaultColumns(),
	}
}

// Validate checks values that do not depend on the output format.
func (c *Config) Validate() error {
	if err := timeline.ValidateGroupNum(int(c.GroupNum)); err != nil {
		return err
	}
	if c.GroupRadius < 0 || math.IsNaN(c.GroupRadius) || math.IsInf(c.GroupRadius, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "group_radius must be non-negative, got %v", c.GroupRadius)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure size must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.MarkerSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "marker_size must be non-negative, got %v", c.MarkerSize)
	}
	switch c.Style {
	case StyleSimple, StyleHanddrawn:
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (must be %s or %s)", c.Style, StyleSimple, StyleHanddrawn)
	}
	if _, err := chart.MarkerByName(c.MarkerBegin); err != nil {
		return err
	}
	if _, err := chart.MarkerByName(c.MarkerEnd); err != nil {
		return err
	}
	if _, err := chart.ParsePalette(c.Palette); err != nil {
		return err
	}
	if c.Background != "" {
		if err := errors.ValidateColor(c.Background); err != nil {
			return err
		}
	}
	if c.Legend.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "legend.columns must be non-negative, got %d", c.Legend.Columns)
	}
	return nil
}
