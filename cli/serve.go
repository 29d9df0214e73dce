package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	actx "github.com/echobin/echobin/app/context"
	aerrors "github.com/echobin/echobin/app/errors"
	"github.com/echobin/echobin/web/server"
)

// Serve starts the web server.
type Serve struct {
	Address string `arg:"" optional:"" help:"[host]:port to listen on. Defaults to the configured address."`
}

// Run the serve command.
func (c *Serve) Run(appCtx *actx.Context) error {
	srv := server.New(appCtx, c.Address)

	// Gracefully shutdown the server if a process signal is received, or the
	// main context is done.
	srvDone := make(chan error)
	go func() {
		srvErr := srv.ListenAndServe()
		slog.Debug("web server shutdown")
		srvDone <- srvErr
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sigCh:
		slog.Debug("process received signal", "signal", s)
	case <-appCtx.Ctx.Done():
		slog.Debug("app context is done")
	case srvErr := <-srvDone:
		if srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			return aerrors.NewWithCause("web server error", srvErr, "address", c.Address)
		}
		return nil
	}

	if err := srv.Shutdown(appCtx.Ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return aerrors.NewWithCause("failed shutting down web server", err)
	}

	return nil
}
