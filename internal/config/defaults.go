// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenIssuer     = "twitter-clone"
	DefaultTokenAudience   = "twitter-clone-users"
	DefaultTokenDuration   = 60 * time.Minute
	DefaultVersion         = "dev"
	DefaultDSN             = "file:twitter.db"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTokenFile       = ".twitter-clone-token"
	DefaultHealthInterval  = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenAudience:    DefaultTokenAudience,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:         DefaultHTTPAddress,
			RequestTimeout:      DefaultRequestTimeout,
			ShutdownTimeout:     DefaultShutdownTimeout,
			HealthCheckInterval: DefaultHealthInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			TokenFile:      DefaultTokenFile,
		},
	}
}
