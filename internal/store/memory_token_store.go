// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/beyond-client/models"
)

type memoryTokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryTokenStore returns a [TokenStore] that lives as long as the
// process.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{values: make(map[string]string, 2)}
}

func (m *memoryTokenStore) AccessToken(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.values[AccessTokenKey], nil
}

func (m *memoryTokenStore) Pair(_ context.Context) (models.TokenPair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.values) == 0 {
		return models.TokenPair{}, ErrTokenNotFound
	}

	return models.TokenPair{
		AccessToken:  m.values[AccessTokenKey],
		RefreshToken: m.values[RefreshTokenKey],
	}, nil
}

func (m *memoryTokenStore) SavePair(_ context.Context, pair models.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[AccessTokenKey] = pair.AccessToken
	m.values[RefreshTokenKey] = pair.RefreshToken
	return nil
}

func (m *memoryTokenStore) ClearPair(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, AccessTokenKey)
	delete(m.values, RefreshTokenKey)
	return nil
}
