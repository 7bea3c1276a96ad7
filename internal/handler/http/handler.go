// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout       time.Duration
	refreshTokenDuration time.Duration
	version              string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.DevAPIConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:             services,
		requestTimeout:       cfg.RequestTimeout,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		version:              cfg.Version,
		logger:               logger,
	}
}
