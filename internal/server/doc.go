// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It runs the HTTP API and, when configured, the gRPC health server. It
// handles startup, signal handling, and graceful shutdown of both.
package server
