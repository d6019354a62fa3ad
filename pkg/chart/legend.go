package chart

// Location names the corner or edge of the legend box that sits on its anchor.
type Location string

const (
	LocLowerCenter Location = "lower center"
	LocUpperCenter Location = "upper center"
	LocUpperRight  Location = "upper right"
	LocUpperLeft   Location = "upper left"
)

const (
	// LegendAnchorX and LegendAnchorY place the figure legend just above the axes.
	LegendAnchorX = 0.5
	LegendAnchorY = 0.86

	// LegendTop is the axes top used when a figure legend is shown.
	LegendTop = 0.86

	defaultLegendFontSize = 12.0
)

// Legend describes a figure-level legend. Anchor coordinates are figure
// fractions with the origin at the bottom left.
type Legend struct {
	AnchorX  float64
	AnchorY  float64
	Loc      Location
	Columns  int // 0 puts every entry in one row
	FontSize float64
	Frame    bool
	Title    string
}

// LegendOption adjusts legend styling.
type LegendOption func(*Legend)

func WithLegendColumns(n int) LegendOption        { return func(l *Legend) { l.Columns = n } }
func WithLegendFontSize(size float64) LegendOption { return func(l *Legend) { l.FontSize = size } }
func WithLegendFrame(on bool) LegendOption         { return func(l *Legend) { l.Frame = on } }
func WithLegendTitle(title string) LegendOption    { return func(l *Legend) { l.Title = title } }

// WithLegendAnchor moves the legend; FigureLegend applies it after its defaults.
func WithLegendAnchor(x, y float64, loc Location) LegendOption {
	return func(l *Legend) { l.AnchorX, l.AnchorY, l.Loc = x, y, loc }
}

// FigureLegend attaches a legend to fig, centred above the axes at
// (0.5, 0.86) with its lower edge on the anchor, and lowers the axes top to
// 0.86 to make room. Options are applied last.
func FigureLegend(fig *Figure, opts ...LegendOption) *Legend {
	l := &Legend{
		AnchorX:  LegendAnchorX,
		AnchorY:  LegendAnchorY,
		Loc:      LocLowerCenter,
		FontSize: defaultLegendFontSize,
		Frame:    true,
	}
	for _, opt := range opts {
		opt(l)
	}
	fig.Legend = l
	fig.Top = LegendTop
	return l
}
