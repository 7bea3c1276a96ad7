// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/beyond-client/internal/logger"

// Storages groups the stores of the development API.
type Storages struct {
	UserRepository UserRepository
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(logger),
	}
}
