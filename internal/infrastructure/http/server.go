package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	input "user-collection-service/internal/domain/ports/input"
	"user-collection-service/internal/infrastructure/config"
	"user-collection-service/internal/infrastructure/logger"
)

type Server struct {
	address string
	log     *logger.Logger
	router  *Router
	server  *http.Server
}

// NewServer wires the router and the underlying http.Server so that Shutdown
// can be called from another goroutine while Run is blocked.
func NewServer(address string, cfg *config.Config, log *logger.Logger, userSvc input.UserInputPort) *Server {
	router := NewRouter(log, userSvc)
	router.Setup(cfg)

	return &Server{
		address: address,
		log:     log,
		router:  router,
		server: &http.Server{
			Addr:         address,
			Handler:      router.GetRouter(),
			ReadTimeout:  cfg.HTTPServer.ReadTimeout,
			WriteTimeout: cfg.HTTPServer.WriteTimeout,
			IdleTimeout:  cfg.HTTPServer.IdleTimeout,
		},
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting server", slog.String("address", s.address))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
