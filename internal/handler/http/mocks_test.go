// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/service"
	"github.com/simran-bhella/twitter-clone/internal/utils"
	"github.com/simran-bhella/twitter-clone/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; unset fields return
// zero values.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	updateUserFn   func(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (models.User, error)
	deleteUserFn   func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn == nil {
		return models.User{}, nil
	}
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	if m.updateUserFn == nil {
		return models.User{}, nil
	}
	return m.updateUserFn(ctx, userID, req)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.deleteUserFn == nil {
		return nil
	}
	return m.deleteUserFn(ctx, userID)
}

// mockTweetService implements service.TweetService for unit tests.
type mockTweetService struct {
	createTweetFn func(ctx context.Context, userID uuid.UUID, req models.TweetRequest) (models.Tweet, error)
	getTweetFn    func(ctx context.Context, tweetID uuid.UUID) (models.Tweet, error)
	listTweetsFn  func(ctx context.Context) ([]models.Tweet, error)
	updateTweetFn func(ctx context.Context, userID, tweetID uuid.UUID, req models.TweetRequest) (models.Tweet, error)
	deleteTweetFn func(ctx context.Context, userID, tweetID uuid.UUID) error
}

func (m *mockTweetService) CreateTweet(ctx context.Context, userID uuid.UUID, req models.TweetRequest) (models.Tweet, error) {
	if m.createTweetFn == nil {
		return models.Tweet{}, nil
	}
	return m.createTweetFn(ctx, userID, req)
}

func (m *mockTweetService) GetTweet(ctx context.Context, tweetID uuid.UUID) (models.Tweet, error) {
	if m.getTweetFn == nil {
		return models.Tweet{}, nil
	}
	return m.getTweetFn(ctx, tweetID)
}

func (m *mockTweetService) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	if m.listTweetsFn == nil {
		return nil, nil
	}
	return m.listTweetsFn(ctx)
}

func (m *mockTweetService) UpdateTweet(ctx context.Context, userID, tweetID uuid.UUID, req models.TweetRequest) (models.Tweet, error) {
	if m.updateTweetFn == nil {
		return models.Tweet{}, nil
	}
	return m.updateTweetFn(ctx, userID, tweetID, req)
}

func (m *mockTweetService) DeleteTweet(ctx context.Context, userID, tweetID uuid.UUID) error {
	if m.deleteTweetFn == nil {
		return nil
	}
	return m.deleteTweetFn(ctx, userID, tweetID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth service.AuthService, tweets service.TweetService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if tweets == nil {
		tweets = &mockTweetService{}
	}

	return &Handler{
		services: &service.Services{
			AuthService:    auth,
			TweetService:   tweets,
			AppInfoService: &mockAppInfoService{version: "test"},
		},
		metrics: metrics.NewNopProvider(),
		logger:  logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// withUser places the values the auth middleware would set.
func withUser(r *http.Request, userID uuid.UUID, username string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.UsernameCtxKey, username)
	return r.WithContext(ctx)
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

var (
	testUserID  = uuid.MustParse("0190a6c4-1111-7000-8000-000000000001")
	otherUserID = uuid.MustParse("0190a6c4-2222-7000-8000-000000000002")
	testTweetID = uuid.MustParse("0190a6c4-3333-7000-8000-000000000003")
	testNow     = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func sampleTweet() models.Tweet {
	return models.Tweet{
		ID:        testTweetID,
		UserID:    testUserID,
		Content:   "hello world",
		CreatedAt: testNow,
		Author: &models.User{
			ID:        testUserID,
			Username:  "alice",
			Email:     "alice@example.com",
			CreatedAt: testNow,
		},
	}
}
