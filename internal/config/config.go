// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after all sources are merged.
const (
	DefaultAPIAddress           = "http://localhost:8000"
	DefaultStorageDSN           = "session.db"
	DefaultServerAddress        = "localhost:8000"
	DefaultTokenIssuer          = "beyond-devapi"
	DefaultTokenSignKey         = "change-me-in-production"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
)

// StructuredConfig is the merged configuration shared by both binaries.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters of the dev API and the app version.
	App App `envPrefix:"APP_"`

	// Storage holds the durable token store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the dev API listen settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional JSON config file merged on top of env
	// and flags. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs the HS256 tokens issued by the dev API.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of access tokens.
	// Env: APP_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of refresh tokens.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// Version is reported by the dev API health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the token store location.
type DB struct {
	// DSN is the SQLite file path, or "memory" for a non-durable store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds dev API listen settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds handler execution. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote API settings used by the client.
type Adapter struct {
	// HTTPAddress is the API base URL (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one outbound request. Zero leaves the
	// transport default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds client background job settings.
type Workers struct {
	// RevalidateInterval is the period of the session revalidation job.
	// Zero disables the job.
	// Env: WORKERS_REVALIDATE_INTERVAL
	RevalidateInterval time.Duration `env:"REVALIDATE_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file. Empty means "logs" next to the binary.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges env, flags (from args) and the
// optional JSON file, then applies defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
