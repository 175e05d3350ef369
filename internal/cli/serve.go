package cli

import (
	"github.com/spf13/cobra"

	"github.com/eisla/eisla/internal/project"
	"github.com/eisla/eisla/internal/server"
)

// serveCommand creates the serve command: the HTTP API over the pipeline.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pipeline over HTTP",
		Long: `Serve exposes the pipeline as an HTTP API: job submission and status,
artifact download and catalog lookup. Jobs run on a bounded worker pool;
parallel jobs share the immutable catalog, each with its own PRNG stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.openCatalog()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = c.Config.ServerAddr
			}
			if workers <= 0 {
				workers = c.Config.ServerWorkers
			}
			workspace := project.ResolveWorkspace(c.Config)

			srv := server.New(cat, workspace, workers, c.Logger)
			srv.StartWorkers(cmd.Context())
			c.Logger.Info("serving", "addr", addr, "workers", workers, "workspace", workspace)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (default from config)")

	return cmd
}
