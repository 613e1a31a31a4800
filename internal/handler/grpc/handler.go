// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the server's health over the standard
// grpc.health.v1 protocol.
package grpc

import (
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
)

// ServiceName is the health-check service name reported next to the
// server-wide "" entry.
const ServiceName = "twitterclone.API"

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] whose status mirrors the lifecycle of the HTTP
// API: SERVING once the server is started, NOT_SERVING while shutting down.
// Every status change is also reported to the service health gauge.
type Handler struct {
	health  *health.Server
	metrics metrics.Provider

	mu       sync.Mutex
	shutdown bool

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as NOT_SERVING
// until [Handler.SetServing] is called.
func NewHandler(metrics metrics.Provider, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:  health.NewServer(),
		metrics: metrics,
		logger:  logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the health service and server reflection to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing flips the reported status for both the server-wide and the API
// service entries.
func (h *Handler) SetServing(serving bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.shutdown {
		return
	}

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.metrics.SetServiceHealth(serving)

	h.logger.Info().Str("status", status.String()).Msg("health status changed")
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shutdown = true

	h.metrics.SetServiceHealth(false)
	h.health.Shutdown()
}
