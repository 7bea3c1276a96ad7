// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client session logic: the [SessionManager] that
// owns who is logged in, the job that revalidates it in the background and
// the generic [Resource] fetcher.
//
// The [AuthService] and [UserService] implementations back the development
// API served by cmd/devapi.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/beyond-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService is the view of the session that UI code depends on.
// [*SessionManager] implements it.
type SessionService interface {
	// State returns a snapshot of the current session.
	State() models.SessionState

	// Loaded is closed once the session leaves the loading state.
	Loaded() <-chan struct{}

	// OnChange registers fn to be called after every applied state change.
	OnChange(fn func(models.SessionState))

	// Login exchanges credentials for tokens and hydrates the user. The
	// returned error message is the one stored as LastError.
	Login(ctx context.Context, email, password string) error

	// Register creates an account without logging in.
	Register(ctx context.Context, email, password, name string) error

	// Logout ends the session locally and, best-effort, remotely.
	Logout(ctx context.Context)

	// Refresh re-validates the stored access token.
	Refresh(ctx context.Context)
}

// SessionWatchJob periodically calls [SessionService.Refresh] in the
// background.
type SessionWatchJob interface {
	// Start launches the job. A previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()
}
