// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/handler"
	myGRPC "github.com/simran-bhella/twitter-clone/internal/handler/grpc"
	"github.com/simran-bhella/twitter-clone/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	health     *myGRPC.Handler

	// ready is closed once every enabled transport is listening.
	ready        chan struct{}
	shutdownOnce sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	servers := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		ready:      make(chan struct{}),
		logger:     logger,
	}

	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.health = handlers.GRPC
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown flips health to NOT_SERVING, drains HTTP, then stops gRPC.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}

		s.httpServer.Shutdown()

		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

// run serves until ctx is done or a transport fails.
func (s *server) run(ctx context.Context) error {
	if err := s.httpServer.Listen(); err != nil {
		return err
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.Listen(); err != nil {
			s.httpServer.listener.Close()
			return err
		}
	}

	errCh := make(chan error, 2)

	s.logger.Info().Msg("Launching HTTP server")
	go func() { errCh <- s.httpServer.Serve() }()

	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() { errCh <- s.gRPCServer.Serve() }()
		s.health.SetServing(true)
	}

	close(s.ready)

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case serveErr = <-errCh:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return serveErr
}
