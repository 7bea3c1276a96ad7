// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
)

// ClientStorages groups the client-side stores into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// TokenStore holds the session credential pair.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer. For
// [config.MemoryDSN] it returns a memory store. Otherwise it:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if missing.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [TokenStore] over the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.IsMemoryStorage() {
		logger.Info().Msg("using in-memory token store")
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil
	}

	logger.Info().Str("dsn", cfg.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewSQLiteTokenStore(db, logger),
		db:         db,
	}, nil
}

// Close releases the database connection, if any.
func (c *ClientStorages) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
