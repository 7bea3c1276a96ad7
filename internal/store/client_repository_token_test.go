// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) (TokenStore, *DB) {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.ClientStorage{DSN: filepath.Join(t.TempDir(), "nested", "session.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewSQLiteTokenStore(db, logger.Nop()), db
}

func newMockTokenStore(t *testing.T) (*sqliteTokenStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	return &sqliteTokenStore{DB: &DB{DB: db, logger: l}, logger: l}, mock, db
}

func TestSQLiteTokenStore_Empty(t *testing.T) {
	s, _ := newTestSQLiteStore(t)
	ctx := context.Background()

	token, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	_, err = s.Pair(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	assert.NoError(t, s.ClearPair(ctx))
}

func TestSQLiteTokenStore_SaveOverwriteClear(t *testing.T) {
	s, _ := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.SavePair(ctx, models.TokenPair{AccessToken: "A1", RefreshToken: "R1"}))
	require.NoError(t, s.SavePair(ctx, models.TokenPair{AccessToken: "A2", RefreshToken: "R2"}))

	token, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A2", token)

	pair, err := s.Pair(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "A2", RefreshToken: "R2"}, pair)

	require.NoError(t, s.ClearPair(ctx))

	token, err = s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	_, err = s.Pair(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestSQLiteTokenStore_SurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.TokenStore.SavePair(ctx, models.TokenPair{AccessToken: "A", RefreshToken: "R"}))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	pair, err := second.TokenStore.Pair(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "A", RefreshToken: "R"}, pair)
}

func TestSQLiteTokenStore_SavePair_RollsBackOnError(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(AccessTokenKey, "A").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(RefreshTokenKey, "R").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.SavePair(context.Background(), models.TokenPair{AccessToken: "A", RefreshToken: "R"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh_token")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_SavePair_Commit(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_store").WithArgs(AccessTokenKey, "A").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO kv_store").WithArgs(RefreshTokenKey, "R").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SavePair(context.Background(), models.TokenPair{AccessToken: "A", RefreshToken: "R"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_BeginError(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := s.ClearPair(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_ClearPair_RollsBackOnError(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs(AccessTokenKey, RefreshTokenKey).
		WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := s.ClearPair(context.Background())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_CommitError(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM kv_store").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := s.ClearPair(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit")
}

func TestSQLiteTokenStore_QueryError(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT key, value FROM kv_store").
		WithArgs(AccessTokenKey).
		WillReturnError(errors.New("no such table"))

	_, err := s.AccessToken(context.Background())

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteTokenStore_PartialPair(t *testing.T) {
	s, mock, db := newMockTokenStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT key, value FROM kv_store").
		WithArgs(AccessTokenKey, RefreshTokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow(AccessTokenKey, "A"))

	pair, err := s.Pair(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "A"}, pair)
}

func TestNewConnectSQLite_EmptyDSN(t *testing.T) {
	_, err := NewConnectSQLite(context.Background(), config.ClientStorage{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyDSN)
}
