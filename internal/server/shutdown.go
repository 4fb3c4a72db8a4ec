package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run serves every server until ctx is cancelled, then shuts them down
// gracefully. The first server to fail stops the others.
func Run(ctx context.Context, logger *zap.Logger, servers ...*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info("Server starting", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully")

		// The context is used to inform the servers they have 5 seconds to
		// finish the requests they are currently handling
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
				errs = errors.Join(errs, err)
			}
		}
		logger.Info("Server exiting")
		return errs
	})

	return g.Wait()
}
