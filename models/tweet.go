// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxTweetLength is the maximum tweet content length in characters.
const MaxTweetLength = 280

// Tweet is a short text post owned by a single user.
type Tweet struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Author is populated on reads that join the owning user.
	Author *User `json:"author,omitempty"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}

// IsOwnedBy reports whether userID is the owner of the tweet.
func (t Tweet) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}
