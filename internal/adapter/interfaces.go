// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// twitter-clone server.
//
// The primary abstraction is [ServerAdapter], which hides the REST details
// from the command-line client. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the twitter-clone server.
// Implementations handle serialisation, the bearer token and mapping of
// transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Ping checks that the server is reachable.
	Ping(ctx context.Context) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Hello calls the protected greeting endpoint.
	Hello(ctx context.Context) (string, error)

	// EditAccount changes any non-empty field of req on the current account.
	EditAccount(ctx context.Context, req models.UpdateUserRequest) error

	// DeleteAccount removes the current account and all of its tweets.
	DeleteAccount(ctx context.Context) error

	CreateTweet(ctx context.Context, content string) (models.Tweet, error)
	GetTweet(ctx context.Context, id uuid.UUID) (models.Tweet, error)
	ListTweets(ctx context.Context) ([]models.Tweet, error)
	UpdateTweet(ctx context.Context, id uuid.UUID, content string) (models.Tweet, error)
	DeleteTweet(ctx context.Context, id uuid.UUID) error
}
