package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jobtimeline/pkg/chart"
	"github.com/matzehuels/jobtimeline/pkg/config"
	"github.com/matzehuels/jobtimeline/pkg/dataset"
	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

// layoutFlags are the flags shared by every command that places jobs.
// Flag defaults mirror config.Default; only flags set explicitly override
// the config file.
type layoutFlags struct {
	configPath  string
	inputFormat string
	columns     dataset.Columns
	noGroup     bool
	groupNum    int
	groupRadius float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (.toml, .yaml, .yml or .json)")
	fs.StringVar(&f.inputFormat, "input-format", "", "input format: csv, json (default: from extension)")
	fs.StringVar(&f.columns.Worker, "worker-col", d.Columns.Worker, "worker column name")
	fs.StringVar(&f.columns.Begin, "begin-col", d.Columns.Begin, "begin column name")
	fs.StringVar(&f.columns.End, "end-col", d.Columns.End, "end column name")
	fs.StringVar(&f.columns.Group, "group-col", d.Columns.Group, "group column name")
	fs.BoolVar(&f.noGroup, "no-group", d.NoGroup, "ignore the group column")
	fs.IntVar(&f.groupNum, "group-num", int(d.GroupNum), "wave steps on each side of a worker row")
	fs.Float64Var(&f.groupRadius, "group-radius", d.GroupRadius, "distance between a worker row and its outermost wave step")
}

func (f *layoutFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := changed(cmd)
	set("worker-col", func() { cfg.Columns.Worker = f.columns.Worker })
	set("begin-col", func() { cfg.Columns.Begin = f.columns.Begin })
	set("end-col", func() { cfg.Columns.End = f.columns.End })
	set("group-col", func() { cfg.Columns.Group = f.columns.Group })
	set("no-group", func() { cfg.NoGroup = f.noGroup })
	set("group-num", func() { cfg.GroupNum = config.GroupNum(f.groupNum) })
	set("group-radius", func() { cfg.GroupRadius = f.groupRadius })
}

// figureFlags are the drawing and output flags of render and config.
type figureFlags struct {
	formats     string
	label       string
	markerBegin string
	markerEnd   string
	markerSize  float64
	palette     []string
	width       float64
	height      float64
	style       string
	seed        uint64
	background  string
	title       string
	xLabel      string
	yLabel      string

	legend         bool
	legendColumns  int
	legendFontSize float64
	legendFrame    bool
	legendTitle    string
}

func (f *figureFlags) register(cmd *cobra.Command) {
	d := config.Default()
	markers := strings.Join(chart.MarkerNames(), ", ")
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	fs.StringVar(&f.label, "label", d.Label, `series label; with groups a template where every literal "{key}" becomes the group (format specs such as "{key:>3}" are not expanded)`)
	fs.StringVar(&f.markerBegin, "marker-begin", d.MarkerBegin, "begin marker: "+markers)
	fs.StringVar(&f.markerEnd, "marker-end", d.MarkerEnd, "end marker: "+markers)
	fs.Float64Var(&f.markerSize, "marker-size", d.MarkerSize, "marker size in pixels")
	fs.StringSliceVar(&f.palette, "palette", d.Palette, "series colors (comma-separated, cycled)")
	fs.Float64Var(&f.width, "width", d.Width, "figure width")
	fs.Float64Var(&f.height, "height", d.Height, "figure height")
	fs.StringVar(&f.style, "style", d.Style, "visual style: simple (default), handdrawn")
	fs.Uint64Var(&f.seed, "seed", d.Seed, "seed for the handdrawn style")
	fs.StringVar(&f.background, "background", d.Background, "background color")
	fs.StringVar(&f.title, "title", d.Title, "figure title")
	fs.StringVar(&f.xLabel, "x-label", d.XLabel, "x axis title")
	fs.StringVar(&f.yLabel, "y-label", d.YLabel, "y axis title")
	fs.BoolVar(&f.legend, "legend", d.Legend.Enabled, "draw a figure legend above the axes")
	fs.IntVar(&f.legendColumns, "legend-columns", d.Legend.Columns, "legend columns (0: one row)")
	fs.Float64Var(&f.legendFontSize, "legend-font-size", d.Legend.FontSize, "legend font size")
	fs.BoolVar(&f.legendFrame, "legend-frame", d.Legend.Frame, "draw a frame around the legend")
	fs.StringVar(&f.legendTitle, "legend-title", d.Legend.Title, "legend title")
}

func (f *figureFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := changed(cmd)
	set("format", func() { cfg.Formats = parseFormats(f.formats) })
	set("label", func() { cfg.Label = f.label })
	set("marker-begin", func() { cfg.MarkerBegin = f.markerBegin })
	set("marker-end", func() { cfg.MarkerEnd = f.markerEnd })
	set("marker-size", func() { cfg.MarkerSize = f.markerSize })
	set("palette", func() { cfg.Palette = f.palette })
	set("width", func() { cfg.Width = f.width })
	set("height", func() { cfg.Height = f.height })
	set("style", func() { cfg.Style = f.style })
	set("seed", func() { cfg.Seed = f.seed })
	set("background", func() { cfg.Background = f.background })
	set("title", func() { cfg.Title = f.title })
	set("x-label", func() { cfg.XLabel = f.xLabel })
	set("y-label", func() { cfg.YLabel = f.yLabel })
	set("legend", func() { cfg.Legend.Enabled = f.legend })
	set("legend-columns", func() { cfg.Legend.Columns = f.legendColumns })
	set("legend-font-size", func() { cfg.Legend.FontSize = f.legendFontSize })
	set("legend-frame", func() { cfg.Legend.Frame = f.legendFrame })
	set("legend-title", func() { cfg.Legend.Title = f.legendTitle })
}

// changed returns a helper that runs fn only when the named flag was set.
func changed(cmd *cobra.Command) func(name string, fn func()) {
	fs := cmd.Flags()
	return func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
}

// resolveConfig layers config.Default, the --config file and explicit flags,
// then validates the result.
// ff may be nil for commands without figure flags.
func resolveConfig(cmd *cobra.Command, lf *layoutFlags, ff *figureFlags) (config.Config, error) {
	cfg, err := loadConfig(lf.configPath)
	if err != nil {
		return config.Config{}, err
	}
	lf.apply(cmd, &cfg)
	if ff != nil {
		ff.apply(cmd, &cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// resolveOptions turns the layered settings into pipeline options for input.
func resolveOptions(cmd *cobra.Command, input string, lf *layoutFlags, ff *figureFlags) (pipeline.Options, error) {
	cfg, err := resolveConfig(cmd, lf, ff)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.FromConfig(cfg)
	opts.Input = input
	if lf.inputFormat != "" {
		if opts.InputFormat, err = dataset.ParseFormat(lf.inputFormat); err != nil {
			return pipeline.Options{}, err
		}
	}
	return opts, nil
}
