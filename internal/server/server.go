// ABOUTME: HTTP server wiring for the taskdeck API
// ABOUTME: Builds the route table, runs the server, and handles graceful shutdown

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/config"
	"github.com/2389/taskdeck/internal/store"
	"github.com/2389/taskdeck/internal/users"
)

// Server is the taskdeck HTTP server.
type Server struct {
	config     *config.Config
	store      *store.SQLiteStore
	users      *users.Service
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a server from configuration: opens the store, builds the token
// verifier from the signing secret (loaded once, immutable afterwards), and
// assembles the route table.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	verifier, err := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		sqlStore.Close()
		return nil, fmt.Errorf("creating token verifier: %w", err)
	}

	s := &Server{
		config: cfg,
		store:  sqlStore,
		users:  users.New(sqlStore, verifier, cfg.Auth.TokenTTL),
		logger: logger.With("component", "server"),
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler builds the full route table. Exposed separately so tests can drive
// the server through httptest without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health endpoint - no auth required
	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth endpoints - public by design
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	// Task endpoints: the middleware attaches the user when a valid token is
	// present but never rejects; requireAuth is where anonymous requests stop
	authMW := auth.Middleware(s.users, s.logger)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMW(s.requireAuth(h))
	}

	mux.Handle("POST /tasks", protected(s.handleCreateTask))
	mux.Handle("GET /tasks", protected(s.handleListTasks))
	mux.Handle("GET /tasks/{id}", protected(s.handleGetTask))
	mux.Handle("PUT /tasks/{id}", protected(s.handleUpdateTask))
	mux.Handle("DELETE /tasks/{id}", protected(s.handleDeleteTask))

	return mux
}

// requireAuth rejects requests that reached a protected endpoint without an
// authenticated identity in context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.FromContext(r.Context()) == nil {
			s.writeError(w, r, http.StatusUnauthorized, "Unauthorized", "authentication required", nil)
			return
		}
		next(w, r)
	}
}

// handleHealth returns 200 OK while the process is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Run starts the HTTP server and blocks until the context is canceled.
// Returns nil on graceful shutdown, or an error if the server fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening on HTTP address: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		s.logger.Info("context canceled, initiating shutdown")
	case serverErr = <-errCh:
		s.logger.Error("server error", "error", serverErr)
	}

	shutdownErr := s.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() intentionally since the original context is already canceled.
func (s *Server) gracefulShutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	return s.store.Close()
}
