// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no route, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// withMetrics records request count, latency and in-flight requests. Routes
// are labelled by their chi pattern, e.g. "/api/tweet/{id}".
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.IncrementInFlight()
		defer h.metrics.DecrementInFlight()

		start := time.Now()
		mw := newResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		h.metrics.IncrementHTTPRequests(r.Method, route, mw.Status())
		h.metrics.RecordHTTPRequestDuration(r.Method, route, time.Since(start))
	})
}
