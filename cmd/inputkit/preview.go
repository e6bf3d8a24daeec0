package main

import (
	"net"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/inputkit/internal/preview"
)

func previewCmd(opts *globalOptions) *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the live preview server",
		Long: `Start a local server rendering the samples from inputkit.yaml.

The page reloads when inputkit.yaml changes. Single elements are
available at /render and Prometheus metrics at /metrics.

Examples:
  inputkit preview
  inputkit preview --port=8080
  inputkit preview --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if noWatch {
				cfg.Preview.Watch = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := preview.NewServer(preview.Options{
				Config: cfg,
				Logger: opts.logger,
			})

			out := cmd.OutOrStdout()
			success(out, "Preview at http://%s", net.JoinHostPort(cfg.Preview.Host, strconv.Itoa(cfg.Preview.Port)))
			if cfg.Path() != "" {
				info(out, "Config: %s", cfg.Path())
			}
			return server.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from inputkit.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from inputkit.yaml)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload on config changes")

	return cmd
}
