package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/DamDam98/robocall-your-rep/internal/api"
	"github.com/DamDam98/robocall-your-rep/internal/calls"
	"github.com/DamDam98/robocall-your-rep/internal/config"
	"github.com/DamDam98/robocall-your-rep/internal/events"
)

type Server struct {
	httpServer *http.Server
	dispatcher *calls.Dispatcher
	hub        *events.Hub
	stopHub    context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	hub := events.NewHub(cfg.CORSAllowedOrigins)
	hubCtx, stopHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	provider := api.NewProvider(cfg)
	dispatcher := calls.NewDispatcher(provider, calls.WithPublisher(hub))

	zap.L().Info("Call provider configured", zap.String("provider", provider.Name()))

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("", cfg.Port),
			Handler:           api.NewRouter(cfg, dispatcher, hub),
			ReadHeaderTimeout: 10 * time.Second,
		},
		dispatcher: dispatcher,
		hub:        hub,
		stopHub:    stopHub,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks until the server stops. A graceful shutdown returns nil.
func (s *Server) Start() error {
	zap.L().Info("Server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, then gives in-flight call dispatches
// until ctx ends to reach their provider.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.stopHub()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if err := s.dispatcher.Wait(ctx); err != nil {
		zap.L().Warn("Call dispatches still in flight at shutdown", zap.Error(err))
	}
	return nil
}
