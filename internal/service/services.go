// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/store"
)

// Services groups the services of the development API.
type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg *config.DevAPIConfig, logger *logger.Logger) (*Services, error) {
	if storages == nil || cfg == nil {
		return nil, errors.New("nil storages or config")
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		UserService: NewUserService(storages.UserRepository, logger),
	}, nil
}
