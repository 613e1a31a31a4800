// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every plain success and error reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login. ExpiresIn is the token
// expiry formatted as RFC 3339.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
}
