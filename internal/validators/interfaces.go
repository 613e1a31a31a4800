// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request DTOs before they reach the
// services.
//
// [NewRequestValidator] is backed by go-playground/validator and reads the
// `validate` struct tags declared in package models. Every failure wraps
// [ErrValidation], so callers can map it to 400 Bad Request with errors.Is.
package validators

import "context"

// Validator validates a request value against its struct tags.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
