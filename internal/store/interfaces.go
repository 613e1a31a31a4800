// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the user and all of their tweets in one transaction.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// TweetRepository persists tweets. Reads return tweets with their author.
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	FindTweetByID(ctx context.Context, id uuid.UUID) (models.Tweet, error)
	// FindAllTweets returns every tweet, newest first.
	FindAllTweets(ctx context.Context) ([]models.Tweet, error)
	// UpdateTweet changes content and updated_at of a tweet owned by
	// tweet.UserID.
	UpdateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	DeleteTweet(ctx context.Context, id, userID uuid.UUID) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// UniqueViolation reports whether err is a unique constraint violation
	// and, if so, which constraint or column triggered it.
	UniqueViolation(err error) (string, bool)
}
