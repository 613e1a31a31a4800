// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"strconv"
	"time"
)

// Provider records application metrics.
type Provider interface {
	IncrementHTTPRequests(method, route string, status int)
	RecordHTTPRequestDuration(method, route string, duration time.Duration)
	IncrementInFlight()
	DecrementInFlight()

	IncrementAuthOperations(operation string, success bool)
	IncrementTweetOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() Provider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) IncrementHTTPRequests(method, route string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (p *PrometheusProvider) RecordHTTPRequestDuration(method, route string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (p *PrometheusProvider) IncrementInFlight() {
	HTTPRequestsInFlight.Inc()
}

func (p *PrometheusProvider) DecrementInFlight() {
	HTTPRequestsInFlight.Dec()
}

func (p *PrometheusProvider) IncrementAuthOperations(operation string, success bool) {
	AuthOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusProvider) IncrementTweetOperations(operation string, success bool) {
	TweetOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}

// NopProvider discards everything. Used in tests and by callers that do not
// export metrics.
type NopProvider struct{}

func NewNopProvider() Provider {
	return NopProvider{}
}

func (NopProvider) IncrementHTTPRequests(string, string, int) {}
func (NopProvider) RecordHTTPRequestDuration(string, string, time.Duration) {}
func (NopProvider) IncrementInFlight() {}
func (NopProvider) DecrementInFlight() {}
func (NopProvider) IncrementAuthOperations(string, bool) {}
func (NopProvider) IncrementTweetOperations(string, bool) {}
func (NopProvider) SetServiceHealth(bool) {}
