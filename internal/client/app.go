// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/tui"
)

var _ Client = (*App)(nil)

// sessionWaitTimeout bounds how long Run waits for in-flight session
// operations before the storage is closed under them.
const sessionWaitTimeout = 5 * time.Second

var (
	ErrNilServices = errors.New("client services are nil")
	ErrNilUI       = errors.New("client ui is nil")
)

type App struct {
	services *service.ClientServices
	ui       UI
	storage  io.Closer
	workers  config.ClientWorkers
	logger   *logger.Logger

	waitTimeout time.Duration
}

// NewApp wires an application. storage is closed when Run returns and may
// be nil.
func NewApp(services *service.ClientServices, ui UI, storage io.Closer, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{
		services: services,
		ui:       ui,
		storage:  storage,
		workers:  workers,
		logger:   log.WithComponent("app"),

		waitTimeout: sessionWaitTimeout,
	}, nil
}

// Run blocks until the UI exits. Leaving the UI with ctrl+c is a normal
// exit.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.storage == nil {
			return
		}
		a.waitSession(ctx)
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close local storage")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	if interval := a.workers.RevalidateInterval; interval > 0 && a.services.WatchJob != nil {
		a.services.WatchJob.Start(ctx, interval)
		defer a.services.WatchJob.Stop()
	}

	a.logger.Info().Str("func", "App.Run").Msg("client started")

	if err = a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
			a.logger.Info().Str("func", "App.Run").Msg("client stopped by user")
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

// waitSession lets session operations still using the token store finish.
// ctx may be cancelled already; the wait is bounded by waitTimeout instead.
func (a *App) waitSession(ctx context.Context) {
	if a.services.Session == nil {
		return
	}

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.waitTimeout)
	defer cancel()

	if err := a.services.Session.Wait(waitCtx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.waitSession").Msg("session operations still running, closing storage anyway")
	}
}
