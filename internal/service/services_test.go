// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/mock"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/validators"
	"github.com/simran-bhella/twitter-clone/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices_WrapsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:  mock.NewMockUserRepository(ctrl),
		TweetRepository: mock.NewMockTweetRepository(ctrl),
	}

	services, err := NewServices(storages, testAppConfig(), metrics.NewNopProvider(), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "test", services.AppInfoService.GetAppVersion(context.Background()))

	// invalid input never reaches the repositories
	_, err = services.AuthService.RegisterUser(context.Background(), models.RegisterRequest{})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := testAppConfig()
	cfg.Version = ""

	_, err := NewServices(&store.Storages{}, cfg, metrics.NewNopProvider(), logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
