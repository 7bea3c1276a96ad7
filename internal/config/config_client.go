// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// MemoryDSN selects the in-memory token store.
const MemoryDSN = "memory"

// ClientAdapter holds the remote API settings used by the client.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the per-request timeout; zero means none.
	RequestTimeout time.Duration
}

// ClientStorage holds the durable token store settings.
type ClientStorage struct {
	// DSN is the SQLite file path or [MemoryDSN].
	DSN string
}

// ClientWorkers holds client background job settings.
type ClientWorkers struct {
	// RevalidateInterval is the session revalidation period; zero disables it.
	RevalidateInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	// LogFile is the client log destination.
	LogFile string
}

// IsMemoryStorage reports whether the token store is non-durable.
func (c ClientStorage) IsMemoryStorage() bool {
	return c.DSN == MemoryDSN || c.DSN == ":memory:"
}

// GetClientConfig builds and validates the client configuration from env,
// args and the optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Workers: ClientWorkers{RevalidateInterval: cfg.Workers.RevalidateInterval},
		LogFile: cfg.Log.File,
	}
}
