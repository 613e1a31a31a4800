// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/handler/grpc"
	"github.com/simran-bhella/twitter-clone/internal/handler/http"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the transport handlers enabled in cfg. The gRPC handler
// only serves health checks, so it is never created on its own.
func NewHandlers(services *service.Services, cfg config.Server, metrics metrics.Provider, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, metrics, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(metrics, logger)
	}

	return handlers, nil
}
