// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/logger"
)

// Storages aggregates the repositories and the connection they share.
type Storages struct {
	DB              *DB
	UserRepository  UserRepository
	TweetRepository TweetRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:              db,
		UserRepository:  NewUserRepository(db, log),
		TweetRepository: NewTweetRepository(db, log),
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
