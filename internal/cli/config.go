package cli

import (
	"github.com/spf13/cobra"
)

// configCommand creates the config command printing the effective settings.
func (c *CLI) configCommand() *cobra.Command {
	var (
		lf layoutFlags
		ff figureFlags
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective render settings as TOML",
		Long: `Print the settings a render would use, after layering built-in defaults,
--config and explicit flags. The output is a valid config file:

  jobtimeline config --group-num 3 --legend > timeline.toml
  jobtimeline render jobs.csv -c timeline.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &lf, &ff)
			if err != nil {
				return err
			}
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}

	lf.register(cmd)
	ff.register(cmd)
	// Input format is a property of a data file, not of the settings.
	cmd.Flags().MarkHidden("input-format")

	return cmd
}
