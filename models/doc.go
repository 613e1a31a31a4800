// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain entities and transport DTOs shared by the
// store, service, handler and adapter layers.
package models
