package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/listctl/internal/source"
	"github.com/rshade/listctl/internal/web"
)

// NewServeCmd creates the serve command, which publishes a listing as an
// HTML page and a JSON view API.
func NewServeCmd() *cobra.Command {
	var (
		src  sourceFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve <source>",
		Short: "Serve a listing over HTTP",
		Long: `Loads a table once and serves it over HTTP. Every request replays the
search, sort, page size and page found in its query string:

  /           HTML page
  /api/view   JSON view
  /healthz    liveness probe`,
		Example: `  # Serve on the configured address
  listctl serve people.csv

  # Serve a SQLite table on port 9000
  listctl serve app.db --host orders --addr :9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := configFromContext(ctx)
			if addr == "" {
				addr = cfg.Server.Addr
			}

			host, err := source.Open(ctx, src.spec(cfg, args[0]))
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			srv := web.NewServer(ctx, host, src.listingConfig(cfg))
			return srv.Run(ctx, addr, func(a net.Addr) {
				cmd.Printf("Serving %s on http://%s\n", host.ID, a)
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
