package chart

import (
	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// Palette maps a series number to a color.
type Palette func(series int) string

// defaultColors is the common ten-color categorical cycle.
var defaultColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultPalette cycles through ten distinguishable colors.
func DefaultPalette() Palette {
	return Cycle(defaultColors)
}

// Cycle returns a palette repeating colors. An empty list falls back to
// DefaultPalette.
func Cycle(colors []string) Palette {
	if len(colors) == 0 {
		colors = defaultColors
	}
	c := append([]string(nil), colors...)
	return func(i int) string {
		i %= len(c)
		if i < 0 {
			i += len(c)
		}
		return c[i]
	}
}

// ParsePalette validates every color and returns a cycling palette.
func ParsePalette(colors []string) (Palette, error) {
	for _, c := range colors {
		if err := errors.ValidateColor(c); err != nil {
			return nil, err
		}
	}
	return Cycle(colors), nil
}
