package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"debugfixture/internal/errors"
	"debugfixture/internal/logging"
)

// ServerConfig tunes the HTTP transport.
type ServerConfig struct {
	// Compress enables gzip for clients that accept it. Off by default so
	// HEAD and GET answers carry the same headers.
	Compress bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the transport defaults
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server represents the fixture HTTP server
type Server struct {
	server   *http.Server
	addr     string
	logger   *logging.Logger
	listener net.Listener
}

// NewServer wraps handler with the middleware chain and prepares an
// http.Server bound to addr.
func NewServer(addr string, handler http.Handler, logger *logging.Logger, cfg ServerConfig) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		addr:   addr,
		logger: logger,
	}

	if cfg.Compress {
		wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(512))
		if err != nil {
			return nil, fmt.Errorf("failed to configure compression: %w", err)
		}
		handler = wrap(handler)
	}

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.applyMiddleware(handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s, nil
}

// Listen binds the listening socket. A failure here is fatal for the process.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.New(errors.BindFailed, "cannot listen on "+s.addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Serve accepts connections until Shutdown is called
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": s.Addr(),
	})

	if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Start binds and serves
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server", nil)

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully", nil)
	return nil
}

// Close drops all connections immediately, including ones with requests in
// flight
func (s *Server) Close() error {
	return s.server.Close()
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last one wraps first)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	return handler
}
