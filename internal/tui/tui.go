// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client on Bubble Tea. Every page
// reads the session through [service.SessionService] and re-renders when
// it changes.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNilServices is returned by [New] when the services are missing.
var ErrNilServices = errors.New("tui: client services are nil")

type TUI struct {
	session   service.SessionService
	tokens    store.TokenStore
	server    adapter.ServerAdapter
	users     *service.Resource[[]models.User]
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, ErrNilServices
	}

	return &TUI{
		session:   services.Session,
		tokens:    services.Tokens,
		server:    services.ServerAPI,
		users:     services.Users,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run blocks until the user leaves the program or ctx is cancelled. It
// returns [ErrUserQuit] when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageLoading, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send returns without blocking once the program has exited.
	// Pages read the session themselves; the message only triggers a
	// re-render, so a change before this point is not lost.
	t.session.OnChange(func(models.SessionState) {
		program.Send(sessionChangedMsg{})
	})

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run tui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Debug().Str("func", "TUI.Run").Str("session", string(t.session.State().Status())).Msg("tui exited")
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageLoading:  NewLoadingModel(ctx, t.session),
		pageMenu:     NewMenuModel(t.session),
		pageLogin:    NewLoginModel(ctx, t.session),
		pageRegister: NewRegisterModel(ctx, t.session),
		pageStatus:   NewStatusModel(ctx, t.session, t.tokens, t.server),
		pageUsers:    NewUsersModel(ctx, t.users),
	}
}
