package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run serves HTTP until ctx is canceled, then drains in-flight requests for
// up to ten seconds.
func (r *Runtime) Run(ctx context.Context) error {
	r.logger.Info("oclaria chatbot starting", "addr", r.cfg.HTTPAddr, "environment", r.cfg.Environment)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := r.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return r.httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
