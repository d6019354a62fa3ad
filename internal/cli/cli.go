// Package cli implements the jobtimeline command-line interface.
//
// # Commands
//
//   - render: draw a job table as SVG, PNG, PDF or JSON
//   - layout: print the computed row, wave offset and position of every job
//   - serve: run the HTTP API
//   - config: print the effective render settings as TOML
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-file for a rotated copy of the log. Loggers are passed through
// context.Context to the command implementations.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jobtimeline/pkg/buildinfo"
	"github.com/matzehuels/jobtimeline/pkg/config"
	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "jobtimeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out     io.Writer
	logFile io.Closer
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		logFile string
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "Jobtimeline draws job schedules as fanned-out Gantt charts",
		Long: `Jobtimeline draws one horizontal line per job, from its begin to its end time,
on the row of the worker that ran it. Jobs of the same worker are fanned out
vertically in a bounded wave so overlapping jobs stay readable.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			if logFile != "" {
				if err := c.attachLogFile(logFile); err != nil {
					return err
				}
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file (rotated)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Close releases the log file, if any.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadConfig returns config.Default, overlaid with path when given.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// =============================================================================
// Output
// =============================================================================

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// A path of "-" returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
