// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/simran-bhella/twitter-clone/internal/adapter"
	"github.com/simran-bhella/twitter-clone/internal/client"
	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("twitter-clone-client")
	log.Debug().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("starting")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, client.NewFileTokenStore(cfg.Adapter.TokenFile), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
