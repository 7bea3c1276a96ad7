// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RevalidateInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DevAPIConfig) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" || cfg.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" ||
		cfg.AccessTokenDuration <= 0 || cfg.RefreshTokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
