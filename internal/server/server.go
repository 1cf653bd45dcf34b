package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/notekeeper/internal/server/handlers"
	"github.com/iudanet/notekeeper/internal/server/middleware"
)

// Handlers группирует все HTTP handlers сервера
type Handlers struct {
	Auth   *handlers.AuthHandler
	Notes  *handlers.NotesHandler
	Health *handlers.HealthHandler
}

// NewRouter собирает HTTP роутер сервера
// Регистрация и логин открыты, все операции с заметками идут через AuthMiddleware
func NewRouter(logger *slog.Logger, jwtConfig handlers.JWTConfig, h Handlers) http.Handler {
	mux := http.NewServeMux()

	// Публичные endpoints
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/health", h.Health.Health)

	// Защищенные endpoints
	auth := middleware.AuthMiddleware(logger, jwtConfig)
	mux.Handle("POST /api/v1/notes", auth(http.HandlerFunc(h.Notes.Create)))
	mux.Handle("GET /api/v1/notes", auth(http.HandlerFunc(h.Notes.List)))
	mux.Handle("PUT /api/v1/notes/{id}", auth(http.HandlerFunc(h.Notes.Update)))
	mux.Handle("DELETE /api/v1/notes/{id}", auth(http.HandlerFunc(h.Notes.Delete)))

	// Общие middleware поверх всего роутера
	// Health check не логируем, чтобы не засорять логи
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

// Server представляет HTTP сервер приложения
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a new Server listening on addr
func New(logger *slog.Logger, addr string, handler http.Handler) *Server {
	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run starts the server and blocks until ctx is cancelled,
// then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down")

	// Даем открытым запросам время завершиться
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
