// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// Normalize trims surrounding whitespace from the username and email. The
// password is kept as typed.
func (r RegisterRequest) Normalize() RegisterRequest {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	return r
}

// LoginRequest is the credentials payload for token issuance.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims surrounding whitespace from the username.
func (r LoginRequest) Normalize() LoginRequest {
	r.Username = strings.TrimSpace(r.Username)
	return r
}

// UpdateUserRequest is the account edit payload. Empty fields are left
// unchanged.
type UpdateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,maxbytes=72"`
}

// Normalize trims surrounding whitespace from the username and email.
func (r UpdateUserRequest) Normalize() UpdateUserRequest {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	return r
}

// TweetRequest is the payload for creating and updating a tweet.
type TweetRequest struct {
	Content string `json:"content" validate:"required,notblank,max=280"`
}
