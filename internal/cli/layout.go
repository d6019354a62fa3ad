package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jobtimeline/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting computed positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		asJSON bool
		lf     layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [jobs.csv|jobs.json]",
		Short: "Print the computed row, wave offset and position of every job",
		Long: `Print the layout of a job table without drawing it.

Every job is listed in input order with the row of its worker, its step in the
offset wave and its final vertical position (row + offset * group_radius / group_num).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, args[0], &lf, nil)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	lf.register(cmd)

	return cmd
}

// runLayout computes the layout and prints it as a table or JSON.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts pipeline.Options, asJSON bool) error {
	opts.Logger = loggerFromContext(ctx)

	rep, err := c.newRunner().Layout(ctx, opts)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s: %d jobs on %d workers", opts.Input, len(rep.Placements), len(rep.Workers))))
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("group_num %d · group_radius %g", rep.GroupNum, rep.GroupRadius)))
	fmt.Fprintln(w, layoutTable(rep))
	if w == os.Stdout {
		printNextStep("Render", appName+" render "+opts.Input)
	}
	return nil
}
