package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jobtimeline/pkg/errors"
	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

// renderCommand creates the render command for drawing a job table.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		lf     layoutFlags
		ff     figureFlags
	)

	cmd := &cobra.Command{
		Use:   "render [jobs.csv|jobs.json]",
		Short: "Render a job table to SVG, PNG, PDF or JSON",
		Long: `Render a job table as a timeline.

The input is a CSV file with a header row (worker, begin, end and an optional
group column) or a JSON file holding a list of jobs. Begin and end are numbers
or timestamps. Jobs with a group are drawn as one colored series per group.

Settings come from built-in defaults, then --config, then explicit flags.

PNG and PDF output requires rsvg-convert (librsvg).`,
		Example: `  jobtimeline render jobs.csv
  jobtimeline render jobs.csv -f svg,png --legend --label "stage {key}"
  jobtimeline render jobs.json -c timeline.toml -o out/schedule
  jobtimeline render jobs.csv -f svg -o - > schedule.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, args[0], &lf, &ff)
			if err != nil {
				return err
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (single format), base path (multiple) or "-" for stdout`)
	lf.register(cmd)
	ff.register(cmd)

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	paths, err := outputPaths(opts.Formats, opts.Input, output)
	if err != nil {
		return err
	}
	if output == "-" {
		if err := checkStdout(opts.Formats); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.Input))
	spinner.Start()
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
	}
	prog.done(fmt.Sprintf("Rendered %d jobs", result.Stats.Jobs))

	if output == "-" {
		return nil
	}
	printSuccess("Rendered %s", opts.Input)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats)
	for _, w := range result.Table.Warnings() {
		printWarning("%s", w)
	}
	return nil
}

// outputPaths maps every format to its output file.
//
// A single format writes to output as given, or next to the input with the
// format's extension. Multiple formats share a base path.
func outputPaths(formats []string, input, output string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))
	if output == "-" {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(formats))
		}
		paths[formats[0]] = output
		return paths, nil
	}
	if len(formats) == 1 && output != "" {
		if err := errors.ValidatePath(output); err != nil {
			return nil, err
		}
		paths[formats[0]] = output
		return paths, nil
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// checkStdout refuses to dump binary formats onto an interactive terminal.
func checkStdout(formats []string) error {
	for _, f := range formats {
		if (f == pipeline.FormatPNG || f == pipeline.FormatPDF) && isTerminal(os.Stdout) {
			return errors.New(errors.ErrCodeInvalidInput, "refusing to write %s to a terminal; redirect stdout or use -o", f)
		}
	}
	return nil
}

// writeArtifact writes data to path ("-" for stdout).
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
