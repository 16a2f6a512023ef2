// Package httpapi exposes the record-management API over HTTP: public
// registration and login endpoints plus the protected CRUD surface for
// agents. Handlers return errors; a single terminal handler converts them to
// the uniform {status, message, errors} response object.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/policia-dp/delegacia-api/internal/logging"
	"github.com/policia-dp/delegacia-api/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	auth      *services.AuthService
	agents    *services.AgentService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, auth *services.AuthService, agents *services.AgentService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		auth:      auth,
		agents:    agents,
		jwtSecret: []byte(secretKey),
	}
}

// routes assembles the full handler tree. Registration and login are public;
// everything under /agentes sits behind the access-control middleware.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /register", s.handle(s.handleRegister))
	mux.Handle("POST /login", s.handle(s.handleLogin))

	mux.Handle("GET /agentes", s.protect(s.handle(s.handleListAgents)))
	mux.Handle("GET /agentes/{id}", s.protect(s.handle(s.handleGetAgent)))
	mux.Handle("PUT /agentes/{id}", s.protect(s.handle(s.handleUpdateAgent)))
	mux.Handle("PATCH /agentes/{id}", s.protect(s.handle(s.handlePartialUpdateAgent)))
	mux.Handle("DELETE /agentes/{id}", s.protect(s.handle(s.handleDeleteAgent)))

	return s.withRequestLogging(s.recoverPanics(mux))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
