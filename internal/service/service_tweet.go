// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/utils"
	"github.com/simran-bhella/twitter-clone/models"
)

type tweetService struct {
	tweetRepository store.TweetRepository
	userRepository  store.UserRepository

	uuidGenerator *utils.UUIDGenerator
	metrics       metrics.Provider
	now           func() time.Time

	logger *logger.Logger
}

func NewTweetService(tweetRepository store.TweetRepository, userRepository store.UserRepository, metrics metrics.Provider, logger *logger.Logger) TweetService {
	return &tweetService{
		tweetRepository: tweetRepository,
		userRepository:  userRepository,
		uuidGenerator:   utils.NewUUIDGenerator(),
		metrics:         metrics,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          logger,
	}
}

// CreateTweet stores a new tweet owned by userID. The author must still
// exist: a token outliving its account yields store.ErrUserNotFound.
func (s *tweetService) CreateTweet(ctx context.Context, userID uuid.UUID, req models.TweetRequest) (tweet models.Tweet, err error) {
	log := logger.FromContext(ctx)
	defer func() { s.metrics.IncrementTweetOperations("create", err == nil) }()

	if req.Content == "" {
		return models.Tweet{}, ErrInvalidDataProvided
	}

	author, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("tweet author lookup failed")
		return models.Tweet{}, fmt.Errorf("tweet author lookup failed: %w", err)
	}

	tweet, err = s.tweetRepository.CreateTweet(ctx, models.Tweet{
		ID:        s.uuidGenerator.Generate(),
		UserID:    author.ID,
		Content:   req.Content,
		CreatedAt: s.now(),
	})
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("tweet creation failed")
		return models.Tweet{}, fmt.Errorf("tweet creation failed: %w", err)
	}

	tweet.Author = &author
	return tweet, nil
}

func (s *tweetService) GetTweet(ctx context.Context, tweetID uuid.UUID) (models.Tweet, error) {
	tweet, err := s.tweetRepository.FindTweetByID(ctx, tweetID)
	if err != nil {
		return models.Tweet{}, fmt.Errorf("tweet search failed: %w", err)
	}

	return tweet, nil
}

func (s *tweetService) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	tweets, err := s.tweetRepository.FindAllTweets(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tweetService.ListTweets").Msg("listing tweets failed")
		return nil, fmt.Errorf("listing tweets failed: %w", err)
	}

	return tweets, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, userID, tweetID uuid.UUID, req models.TweetRequest) (tweet models.Tweet, err error) {
	log := logger.FromContext(ctx)
	defer func() { s.metrics.IncrementTweetOperations("update", err == nil) }()

	if req.Content == "" {
		return models.Tweet{}, ErrInvalidDataProvided
	}

	tweet, err = s.ownedTweet(ctx, userID, tweetID)
	if err != nil {
		return models.Tweet{}, err
	}

	updatedAt := s.now()
	tweet.Content = req.Content
	tweet.UpdatedAt = &updatedAt

	tweet, err = s.tweetRepository.UpdateTweet(ctx, tweet)
	if err != nil {
		log.Err(err).Str("tweet_id", tweetID.String()).Msg("tweet update failed")
		return models.Tweet{}, fmt.Errorf("tweet update failed: %w", err)
	}

	return tweet, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, userID, tweetID uuid.UUID) (err error) {
	defer func() { s.metrics.IncrementTweetOperations("delete", err == nil) }()

	if _, err = s.ownedTweet(ctx, userID, tweetID); err != nil {
		return err
	}

	if err = s.tweetRepository.DeleteTweet(ctx, tweetID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("tweet_id", tweetID.String()).Msg("tweet deletion failed")
		return fmt.Errorf("tweet deletion failed: %w", err)
	}

	return nil
}

// ownedTweet loads the tweet and checks that userID owns it.
func (s *tweetService) ownedTweet(ctx context.Context, userID, tweetID uuid.UUID) (models.Tweet, error) {
	tweet, err := s.tweetRepository.FindTweetByID(ctx, tweetID)
	if err != nil {
		return models.Tweet{}, fmt.Errorf("tweet search failed: %w", err)
	}

	if !tweet.IsOwnedBy(userID) {
		logger.FromContext(ctx).Warn().
			Str("tweet_id", tweetID.String()).
			Str("user_id", userID.String()).
			Msg("tweet mutation by non-owner refused")
		return models.Tweet{}, ErrForbidden
	}

	return tweet, nil
}
