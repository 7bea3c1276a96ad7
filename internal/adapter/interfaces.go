// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the session service
// and the remote REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Failed responses are mapped to [*APIError] values that also match the status
// sentinels in errors.go, so callers can use [errors.Is] (for example
// [ErrUnauthorized] for 401) and [errors.As] to reach the server's code and
// message. Transport failures wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/beyond-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the authentication API.
// Implementations are responsible for serialisation, the Authorization header
// and mapping transport-level errors to the values defined in this package.
type ServerAdapter interface {
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)

	// Register creates an account. No token is issued.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Me returns the user identified by accessToken.
	Me(ctx context.Context, accessToken string) (models.User, error)

	// Logout tells the server to end the session of accessToken.
	Logout(ctx context.Context, accessToken string) error

	// Health reports the API liveness status.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Do sends an arbitrary request. body, when non-nil, is sent as JSON and
	// the envelope data is decoded into out when out is non-nil. On non-2xx
	// the returned envelope still carries whatever the server sent.
	Do(ctx context.Context, method, endpoint string, body, out any) (models.Envelope, error)
}
