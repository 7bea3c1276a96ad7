// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusMsgTTL = 2 * time.Second

var errNoAccessToken = errors.New("нет сохранённого токена")

// StatusModel shows the current session: the user record, the server
// health and the actions available on the session.
type StatusModel struct {
	ctx     context.Context
	session service.SessionService
	tokens  store.TokenStore
	server  adapter.ServerAdapter

	// copyToClipboard is clipboard.WriteAll outside of tests.
	copyToClipboard func(string) error

	busy   bool
	status string
	errMsg string
	health string
}

func NewStatusModel(ctx context.Context, session service.SessionService, tokens store.TokenStore, server adapter.ServerAdapter) *StatusModel {
	return &StatusModel{
		ctx:             ctx,
		session:         session,
		tokens:          tokens,
		server:          server,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m *StatusModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return m.cmdHealth()
}

func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.busy = false
		m.status = "Сессия обновлена"
		return m, clearStatusAfter()
	case logoutDoneMsg:
		m.busy = false
		m.status = "Вы вышли из аккаунта"
		return m, clearStatusAfter()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Токен скопирован в буфер обмена"
		return m, clearStatusAfter()
	case healthMsg:
		m.health = renderHealth(msg)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *StatusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.refresh):
		m.busy = true
		m.errMsg = ""
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.logout):
		if !m.session.State().IsAuthenticated {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, m.cmdLogout()
	case key.Matches(msg, keys.copy):
		m.errMsg = ""
		return m, m.cmdCopyToken()
	case key.Matches(msg, keys.health):
		m.health = "проверка..."
		return m, m.cmdHealth()
	}

	return m, nil
}

func (m *StatusModel) View() string {
	state := m.session.State()

	var b strings.Builder
	b.WriteString(renderOK(m.status))
	b.WriteString(fmt.Sprintf("Состояние │ %s\n", state.Status()))

	if u := state.User; u != nil {
		b.WriteString(fmt.Sprintf("ID        │ %d\n", u.ID))
		b.WriteString(fmt.Sprintf("Email     │ %s\n", valueOrDash(u.Email)))
		b.WriteString(fmt.Sprintf("Имя       │ %s\n", valueOrDash(fitText(u.Name, 40))))
		b.WriteString(fmt.Sprintf("Роль      │ %s\n", valueOrDash(u.Role.String())))
		b.WriteString(fmt.Sprintf("Активен   │ %s\n", yesNo(u.IsActive)))
		b.WriteString(fmt.Sprintf("Создан    │ %s\n", formatTime(u.CreatedAt.Time)))
	}

	b.WriteString(fmt.Sprintf("Сервер    │ %s\n", valueOrDash(m.health)))

	if m.busy {
		b.WriteString("\n[Выполняется...]\n")
	}
	b.WriteString(renderError(m.errMsg))

	hotKeys := "esc: назад │ r: обновить │ h: проверить сервер"
	if state.IsAuthenticated {
		hotKeys += " │ c: копировать токен │ l: выйти"
	}

	return renderPage("СЕССИЯ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *StatusModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.Refresh(ctx)
		return refreshDoneMsg{}
	}
}

func (m *StatusModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m *StatusModel) cmdCopyToken() tea.Cmd {
	ctx := m.ctx
	tokens := m.tokens
	copyFn := m.copyToClipboard

	return func() tea.Msg {
		token, err := tokens.AccessToken(ctx)
		if err != nil {
			return copiedMsg{err: fmt.Errorf("не удалось прочитать токен: %w", err)}
		}
		if token == "" {
			return copiedMsg{err: errNoAccessToken}
		}
		if err = copyFn(token); err != nil {
			return copiedMsg{err: fmt.Errorf("не удалось скопировать: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *StatusModel) cmdHealth() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		status, err := server.Health(ctx)
		return healthMsg{status: status, err: err}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusMsgTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func renderHealth(msg healthMsg) string {
	if msg.err != nil {
		return errorStyle.Render(humanizeServerUnavailableError(msg.err))
	}
	if msg.status.IsHealthy() {
		return okStyle.Render(msg.status.Status)
	}
	return valueOrDash(msg.status.Status)
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

