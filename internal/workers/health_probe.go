// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/simran-bhella/twitter-clone/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

type healthProbe struct {
	pinger   Pinger
	reporter StatusReporter
	interval time.Duration
	logger   *logger.Logger
}

// NewHealthProbe returns a worker that pings the database every interval and
// reports the outcome. Each ping is bounded by the interval itself.
func NewHealthProbe(pinger Pinger, reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &healthProbe{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger.GetChildLogger(),
	}
}

func (p *healthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	last := p.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = p.probe(ctx, last)
		}
	}
}

// probe pings once and reports the result. Status changes are logged; last
// is nil before the first probe.
func (p *healthProbe) probe(ctx context.Context, last *bool) *bool {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.pinger.PingContext(pingCtx)
	if ctx.Err() != nil {
		return last
	}

	serving := err == nil
	p.reporter.SetServing(serving)

	if last == nil || *last != serving {
		if serving {
			p.logger.Info().Msg("database is reachable")
		} else {
			p.logger.Err(err).Msg("database is unreachable")
		}
	}

	return &serving
}
