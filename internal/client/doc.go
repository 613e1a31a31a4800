// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// Each invocation runs one command against the server through an
// [adapter.ServerAdapter]. The bearer token obtained by "login" is kept in a
// file so that later invocations stay authenticated.
package client
