package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// statusOut receives status lines. Artifacts may go to stdout, so status
// output never does.
var statusOut io.Writer = os.Stderr

// =============================================================================
// Terminal Detection
// =============================================================================

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(statusOut, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(statusOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Stats Display
// =============================================================================

// formatStats renders run statistics on a single line.
func formatStats(s pipeline.Stats) string {
	parts := []string{
		plural(s.Jobs, "job"),
		plural(s.Workers, "worker"),
		plural(s.Partitions, "series"),
	}
	var line strings.Builder
	line.WriteString("  ")
	for i, part := range parts {
		if i > 0 {
			line.WriteString(StyleDim.Render(" · "))
		}
		line.WriteString(StyleDim.Render(part))
	}
	return line.String()
}

// printStats prints run statistics on a single line.
func printStats(s pipeline.Stats) {
	fmt.Fprintln(statusOut, formatStats(s))
}

func plural(n int, noun string) string {
	if n == 1 || strings.HasSuffix(noun, "s") {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// =============================================================================
// Layout Table
// =============================================================================

// layoutTable renders a layout report as a bordered table.
func layoutTable(rep *pipeline.Report) string {
	grouped := len(rep.Placements) > 0 && rep.Placements[0].Group != nil

	headers := []string{"#", "Worker", "Begin", "End", "Row", "Offset", "Position"}
	if grouped {
		headers = append(headers, "Group")
	}

	rows := make([][]string, 0, len(rep.Placements))
	for _, p := range rep.Placements {
		row := []string{
			strconv.Itoa(p.Entry),
			p.Worker,
			formatFloat(p.Begin),
			formatFloat(p.End),
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Offset),
			formatFloat(p.Position),
		}
		if grouped {
			row = append(row, *p.Group)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorWhite)
			case col == 6:
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
	return t.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
