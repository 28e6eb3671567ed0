package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ib-77/strata/internal/config"
	"github.com/ib-77/strata/pkg/collections/hashmap"
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/net/router"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured static routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			srv := &http.Server{
				Addr:              config.GetListenAddress(),
				Handler:           newRouter(config.GetRoutes()),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(ctx, srv)
		},
	}

	cmd.Flags().String(config.Listen, ":8080", "listen address")

	return cmd
}

// newRouter answers GET on every configured path with its body.
func newRouter(routes *hashmap.Map[string, string]) *router.Router {
	r := router.New()
	for entry := range seq.All(routes.Iter()) {
		body := entry.Value
		r.Get(entry.Key, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprint(w, body)
		})
	}
	return r
}

// serve runs srv until ctx is done, then shuts it down.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		zap.S().Infow("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	zap.S().Infow("server stopped", "addr", srv.Addr)
	return nil
}
