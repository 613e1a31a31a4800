// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/models"
)

type tweetRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	logger.Debug().Msg("creating tweet repository")
	return &tweetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTweetQuery(r.db.builder, tweet)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error building query")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error inserting tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tweet, nil
}

func (r *tweetRepository) FindTweetByID(ctx context.Context, id uuid.UUID) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTweetByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error building query")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tweet models.Tweet
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		tweet, scanErr = scanTweet(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Tweet{}, ErrTweetNotFound
	case err != nil:
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error selecting tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tweet, nil
}

func (r *tweetRepository) FindAllTweets(ctx context.Context) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllTweetsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.FindAllTweets").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tweets []models.Tweet
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		tweets = make([]models.Tweet, 0)
		for rows.Next() {
			tweet, scanErr := scanTweet(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			tweets = append(tweets, tweet)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.FindAllTweets").Msg("error selecting tweets")
		return nil, err
	}

	return tweets, nil
}

// UpdateTweet sets content and updated_at. A tweet that does not exist or is
// not owned by tweet.UserID yields [ErrTweetNotFound].
func (r *tweetRepository) UpdateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	updatedAt := time.Now().UTC()
	if tweet.UpdatedAt != nil {
		updatedAt = *tweet.UpdatedAt
	}

	query, args, err := buildUpdateTweetQuery(r.db.builder, tweet, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.UpdateTweet").Msg("error building query")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.UpdateTweet").Msg("error updating tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Tweet{}, ErrTweetNotFound
	}

	tweet.UpdatedAt = &updatedAt
	return tweet, nil
}

func (r *tweetRepository) DeleteTweet(ctx context.Context, id, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTweetQuery(r.db.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.DeleteTweet").Msg("error deleting tweet")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTweetNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTweet(row rowScanner) (models.Tweet, error) {
	var (
		tweet     models.Tweet
		author    models.User
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&tweet.ID, &tweet.UserID, &tweet.Content, &tweet.CreatedAt, &updatedAt,
		&author.ID, &author.Username, &author.Email, &author.CreatedAt,
	)
	if err != nil {
		return models.Tweet{}, err
	}

	tweet.CreatedAt = tweet.CreatedAt.UTC()
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		tweet.UpdatedAt = &t
	}
	author.CreatedAt = author.CreatedAt.UTC()
	tweet.Author = &author

	return tweet, nil
}
