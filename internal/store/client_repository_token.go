// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/models"
)

type sqliteTokenStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteTokenStore returns a [TokenStore] over the kv_store table of db.
func NewSQLiteTokenStore(db *DB, logger *logger.Logger) TokenStore {
	return &sqliteTokenStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteTokenStore) AccessToken(ctx context.Context) (string, error) {
	values, err := s.read(ctx, AccessTokenKey)
	if err != nil {
		return "", err
	}

	return values[AccessTokenKey], nil
}

func (s *sqliteTokenStore) Pair(ctx context.Context) (models.TokenPair, error) {
	values, err := s.read(ctx, AccessTokenKey, RefreshTokenKey)
	if err != nil {
		return models.TokenPair{}, err
	}
	if len(values) == 0 {
		return models.TokenPair{}, ErrTokenNotFound
	}

	return models.TokenPair{
		AccessToken:  values[AccessTokenKey],
		RefreshToken: values[RefreshTokenKey],
	}, nil
}

func (s *sqliteTokenStore) SavePair(ctx context.Context, pair models.TokenPair) error {
	return s.inTx(ctx, "sqliteTokenStore.SavePair", func(tx *sql.Tx) error {
		for _, kv := range [][2]string{
			{AccessTokenKey, pair.AccessToken},
			{RefreshTokenKey, pair.RefreshToken},
		} {
			query, args, err := buildUpsertTokenQuery(kv[0], kv[1])
			if err != nil {
				return fmt.Errorf("build upsert query: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to save %s: %w", kv[0], err)
			}
		}
		return nil
	})
}

func (s *sqliteTokenStore) ClearPair(ctx context.Context) error {
	return s.inTx(ctx, "sqliteTokenStore.ClearPair", func(tx *sql.Tx) error {
		query, args, err := buildDeleteTokensQuery(AccessTokenKey, RefreshTokenKey)
		if err != nil {
			return fmt.Errorf("build delete query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear tokens: %w", err)
		}
		return nil
	})
}

func (s *sqliteTokenStore) read(ctx context.Context, keys ...string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTokensQuery(keys...)
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteTokenStore.read").
			Strs("keys", keys).
			Msg("failed to query tokens")
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan token row: %w", err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate token rows: %w", err)
	}

	return values, nil
}

// inTx runs fn in a transaction, committing on success and rolling back
// otherwise.
func (s *sqliteTokenStore) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := s.logger

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", funcName).Msg("failed to rollback transaction")
		}
		log.Err(err).Str("func", funcName).Msg("transaction rolled back")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
