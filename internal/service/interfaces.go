// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// TweetService manages tweets. Mutations take the requesting user's ID and
// are refused with ErrForbidden for anyone but the owner.
type TweetService interface {
	CreateTweet(ctx context.Context, userID uuid.UUID, req models.TweetRequest) (models.Tweet, error)
	GetTweet(ctx context.Context, tweetID uuid.UUID) (models.Tweet, error)
	ListTweets(ctx context.Context) ([]models.Tweet, error)
	UpdateTweet(ctx context.Context, userID, tweetID uuid.UUID, req models.TweetRequest) (models.Tweet, error)
	DeleteTweet(ctx context.Context, userID, tweetID uuid.UUID) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// TweetServiceWrapper is the TweetService counterpart of AuthServiceWrapper.
type TweetServiceWrapper interface {
	Wrap(TweetService) TweetService
}
