// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the credential pair of the session on the client.
//
// [TokenStore] is a string key/value store with exactly two keys,
// [AccessTokenKey] and [RefreshTokenKey]. The SQLite implementation keeps
// them in the kv_store table created by the migrations package; the memory
// implementation is used for ephemeral sessions and tests.
//
// [UserRepository] is the account store of the development API.
package store

import (
	"context"

	"github.com/MKhiriev/beyond-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys under which the credential pair is stored.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenStore persists the access/refresh token pair across restarts.
// The pair is always written and cleared together.
type TokenStore interface {
	// AccessToken returns the stored access token, or "" when none is stored.
	AccessToken(ctx context.Context) (string, error)
	// Pair returns both tokens. It fails with [ErrTokenNotFound] when neither
	// is stored.
	Pair(ctx context.Context) (models.TokenPair, error)
	// SavePair writes both tokens in one step.
	SavePair(ctx context.Context, pair models.TokenPair) error
	// ClearPair removes both tokens in one step. Clearing an empty store is
	// not an error.
	ClearPair(ctx context.Context) error
}
