package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/jobtimeline/internal/server"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
		lf      layoutFlags
		ff      figureFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the jobtimeline HTTP API.

  POST /v1/timeline?format=svg|png|pdf|json   render {"jobs": [...], "options": {...}}
  POST /v1/layout                             layout report for the same body
  GET  /healthz                               liveness and version

Request options are layered on top of the server defaults, which come from
--config and the render flags. Combine with --log-file for rotated request logs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &lf, &ff)
			if err != nil {
				return err
			}
			srv := server.New(server.Options{
				Logger:       c.Logger,
				Defaults:     &cfg,
				MaxBodyBytes: maxBody,
			})
			printInfo("Serving on %s", addr)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")
	lf.register(cmd)
	ff.register(cmd)

	return cmd
}
