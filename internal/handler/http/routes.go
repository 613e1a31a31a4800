// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/auth/ping", h.ping)
		r.Post("/api/auth/signup", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/tweet", h.listTweets)
		r.Get("/api/tweet/{id}", h.getTweet)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Put("/api/auth/edit", h.editAccount)
			r.Delete("/api/auth/delete", h.deleteAccount)
			r.Get("/api/test/hello", h.hello)

			r.Post("/api/tweet", h.createTweet)
			r.Put("/api/tweet/{id}", h.updateTweet)
			r.Delete("/api/tweet/{id}", h.deleteTweet)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
