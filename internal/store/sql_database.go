// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for users and tweets on top of
// database/sql. PostgreSQL (pgx) and SQLite (go-sqlite3) are supported; the
// driver is chosen from the DSN.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/migrations"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// retryDelays are the pauses between attempts of a retryable read.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// DB wraps *sql.DB with the driver-specific query builder and error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a PostgreSQL connection for "postgres://", "postgresql://" and
// keyword/value ("host=...") DSNs, and a SQLite connection otherwise.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.HasPrefix(dsn, "host=")
}

// Migrate applies the embedded schema migrations for the connected driver.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := migrations.DialectSQLite
	if db.driver == driverPostgres {
		dialect = migrations.DialectPostgres
	}

	applied, err := migrations.Migrate(ctx, db.DB, dialect)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Int("applied", applied).Msg("migrations applied")
	return nil
}

// withRetry runs op again after a short pause while the classifier reports
// its error as retryable. Only idempotent reads go through here.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database read")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}

// uniqueViolationError maps a unique constraint failure on the users table
// to the matching sentinel error. ok is false for any other error.
func (db *DB) uniqueViolationError(err error) (error, bool) {
	if db.errorClassificator == nil {
		return nil, false
	}

	constraint, ok := db.errorClassificator.UniqueViolation(err)
	if !ok {
		return nil, false
	}

	switch {
	case strings.Contains(constraint, "username"):
		return ErrUsernameAlreadyExists, true
	case strings.Contains(constraint, "email"):
		return ErrEmailAlreadyExists, true
	default:
		return nil, false
	}
}
