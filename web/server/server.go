// Package server wires the echo endpoints into an HTTP server.
package server

import (
	"log/slog"
	"net"
	"net/http"

	actx "github.com/echobin/echobin/app/context"
	"github.com/echobin/echobin/web/server/api"
	"github.com/echobin/echobin/web/server/middleware"
)

// Server is a wrapper around http.Server with some custom behavior.
type Server struct {
	*http.Server
	logger *slog.Logger
}

// New returns a new web Server instance that will listen on addr.
// Timeouts are taken from the application configuration.
func New(appCtx *actx.Context, addr string) *Server {
	logger := appCtx.Logger.With("component", "web-server")
	cfg := appCtx.Config.Server

	return &Server{
		Server: &http.Server{
			Handler:           SetupHandlers(appCtx, logger),
			Addr:              addr,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout.V,
			ReadTimeout:       cfg.ReadTimeout.V,
			WriteTimeout:      cfg.WriteTimeout.V,
		},
		logger: logger,
	}
}

// ListenAndServe starts the HTTP server. Failing to bind the listen
// address is returned as an error, which the caller treats as fatal.
// It stores the actual listen address, which is convenient when the
// address is dynamically determined by the system (e.g. ':0').
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	s.Addr = ln.Addr().String()
	s.logger.Info("started listener", "address", s.Addr)

	//nolint:wrapcheck // This is fine.
	return s.Serve(ln)
}

// SetupHandlers configures the server HTTP handlers.
func SetupHandlers(appCtx *actx.Context, logger *slog.Logger) http.Handler {
	return middleware.Chain(
		api.SetupHandlers(appCtx, logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)
}
