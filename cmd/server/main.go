// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/handler"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/server"
	"github.com/simran-bhella/twitter-clone/internal/service"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/workers"
	"github.com/simran-bhella/twitter-clone/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("twitter-clone-server")
	log.Info().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("starting")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	metricsProvider := metrics.NewPrometheusProvider()

	services, err := service.NewServices(storages, cfg.App, metricsProvider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, metricsProvider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var reporter workers.StatusReporter = workers.ReporterFunc(metricsProvider.SetServiceHealth)
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	background := workers.NewWorkers(
		workers.NewHealthProbe(storages.DB, reporter, cfg.Server.HealthCheckInterval, log),
	)

	workersDone := make(chan struct{})
	go func() {
		background.Run(ctx)
		close(workersDone)
	}()

	srv.RunServer()

	stop()
	<-workersDone
}
