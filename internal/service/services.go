// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/validators"
)

type Services struct {
	AuthService    AuthService
	TweetService   TweetService
	AppInfoService AppInfoService
}

// NewServices builds the services over storages. Account and tweet services
// are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, metrics metrics.Provider, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	authService := NewAuthValidationService(validator).
		Wrap(NewAuthService(storages.UserRepository, cfg, metrics, logger))
	tweetService := NewTweetValidationService(validator).
		Wrap(NewTweetService(storages.TweetRepository, storages.UserRepository, metrics, logger))

	return &Services{
		AuthService:    authService,
		TweetService:   tweetService,
		AppInfoService: appInfoService,
	}, nil
}
