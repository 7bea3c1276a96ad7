// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/models"
)

// ClientServices groups the services the terminal client depends on.
type ClientServices struct {
	Session   *SessionManager
	WatchJob  SessionWatchJob
	Users     *Resource[[]models.User]
	ServerAPI adapter.ServerAdapter
	Tokens    store.TokenStore
}

// NewClientServices constructs the single session of the application, which
// starts hydrating immediately, plus its supporting services.
func NewClientServices(ctx context.Context, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	session := NewSessionManager(ctx, serverAdapter, storages.TokenStore, log)

	return &ClientServices{
		Session:   session,
		WatchJob:  NewSessionWatchJob(session, log),
		Users:     NewResource[[]models.User](serverAdapter),
		ServerAPI: serverAdapter,
		Tokens:    storages.TokenStore,
	}
}
