// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// TokenFile is where the bearer token is kept between invocations.
	TokenFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from
// defaults, environment, client flags and JSON. It returns the positional
// arguments left after flag parsing (the client command and its operands).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withClientFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			TokenFile:      cfg.Adapter.TokenFile,
		},
	}

	return clientCfg, b.args, clientCfg.validate()
}
