// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingModel is shown until the initial session hydration settles. It
// then opens the menu.
type LoadingModel struct {
	ctx     context.Context
	session service.SessionService
	spinner spinner.Model
}

func NewLoadingModel(ctx context.Context, session service.SessionService) *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &LoadingModel{
		ctx:     ctx,
		session: session,
		spinner: s,
	}
}

func (m *LoadingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdWaitLoaded())
}

func (m *LoadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *LoadingModel) View() string {
	return renderPage("ЗАГРУЗКА", m.spinner.View()+" Восстановление сессии...", "")
}

func (m *LoadingModel) cmdWaitLoaded() tea.Cmd {
	ctx := m.ctx
	loaded := m.session.Loaded()

	return func() tea.Msg {
		select {
		case <-loaded:
			return sessionLoadedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}
