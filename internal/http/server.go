package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

func loggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoContext(
			r.Context(),
			"request",
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	httpServer *http.Server
	logger     Logger
}

func NewServer(
	usersHandler UsersHandler,
	accountsHandler AccountsHandler,
	logger Logger,
	config Config,
) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/users", usersHandler.GetAllUsers)
	mux.HandleFunc("POST /api/v1/users", usersHandler.CreateUser)
	mux.HandleFunc("GET /api/v1/users/{userId}", usersHandler.GetUserByID)
	mux.HandleFunc("GET /api/v1/users/{userId}/accounts", usersHandler.GetUserAccounts)
	mux.HandleFunc("GET /api/v1/accounts/{accountId}", accountsHandler.GetAccountByID)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := loggingMiddleware(logger, metricsMiddleware(mux))

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
