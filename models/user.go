// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
type User struct {
	// ID is the unique identifier of the user (UUIDv7).
	ID uuid.UUID `json:"id"`

	// Username is the unique login name, at most 50 characters.
	Username string `json:"username"`

	// Email is the unique e-mail address, at most 100 characters.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the UTC timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
