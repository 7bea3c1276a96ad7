// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DevAPIConfig is the dev API view of [StructuredConfig].
type DevAPIConfig struct {
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds handler execution; zero disables it.
	RequestTimeout time.Duration

	TokenSignKey         string
	TokenIssuer          string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration

	// Version is reported by GET /health.
	Version string
}

// GetDevAPIConfig builds and validates the dev API configuration.
func GetDevAPIConfig(args []string) (*DevAPIConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevAPIConfig{
		HTTPAddress:          cfg.Server.HTTPAddress,
		RequestTimeout:       cfg.Server.RequestTimeout,
		TokenSignKey:         cfg.App.TokenSignKey,
		TokenIssuer:          cfg.App.TokenIssuer,
		AccessTokenDuration:  cfg.App.AccessTokenDuration,
		RefreshTokenDuration: cfg.App.RefreshTokenDuration,
		Version:              cfg.App.Version,
	}
	return devCfg, devCfg.validate()
}
