package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diogo/askweb/internal/devserver"
)

func newDevServerCmd(deps *Dependencies) *cobra.Command {
	cfg := devserver.Config{}

	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Run a stub /ask and /pdf backend",
		Long: `Serve canned answers on the service endpoints so the client can be
exercised without a model behind it. /ask echoes the question and /pdf
reports the uploaded file's name and size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return deps.Serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", ":5000", "Listen address")
	cmd.Flags().StringVar(&cfg.AllowedOrigin, "origin", "*", "Allowed CORS origin")
	return cmd
}
