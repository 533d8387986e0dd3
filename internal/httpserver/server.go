// Package httpserver serves the storefront pages and translates HTTP
// requests into controller events. It is a Page adapter: the core writes
// into per-session slot state, and the handlers here project that state
// into HTML. The core never imports gin.
package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"shopfront/internal/kvstore"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	KV kvstore.Store
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the storefront routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router, err := buildRouter(logger, deps)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
