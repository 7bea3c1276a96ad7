// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const usersEndpoint = "/api/v1/users"

// UsersModel lists the users known to the API.
type UsersModel struct {
	ctx   context.Context
	users *service.Resource[[]models.User]

	meta   *models.Meta
	errMsg string
}

func NewUsersModel(ctx context.Context, users *service.Resource[[]models.User]) *UsersModel {
	return &UsersModel{ctx: ctx, users: users}
}

func (m *UsersModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.meta = msg.meta
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = msg.err.Message
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.refresh):
			if m.users.Loading() {
				return m, nil
			}
			return m, m.cmdLoad()
		}
	}
	return m, nil
}

func (m *UsersModel) View() string {
	var b strings.Builder

	switch data := m.users.Data(); {
	case m.users.Loading():
		b.WriteString("Загрузка...\n")
	case data == nil || len(*data) == 0:
		b.WriteString("Пользователей нет\n")
	default:
		b.WriteString(fmt.Sprintf("%-6s │ %-30s │ %-20s │ %s\n", "ID", "Email", "Имя", "Роль"))
		b.WriteString(strings.Repeat("─", 72))
		b.WriteString("\n")
		for _, u := range *data {
			b.WriteString(fmt.Sprintf("%-6d │ %-30s │ %-20s │ %s\n",
				u.ID, fitText(u.Email, 30), fitText(valueOrDash(u.Name), 20), valueOrDash(u.Role.String())))
		}
		if m.meta != nil && m.meta.Total != nil {
			b.WriteString(fmt.Sprintf("\nВсего: %d\n", *m.meta.Total))
		}
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("ПОЛЬЗОВАТЕЛИ", strings.TrimRight(b.String(), "\n"), "esc: назад │ r: обновить")
}

func (m *UsersModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	users := m.users

	return func() tea.Msg {
		env := users.Request(ctx, "", usersEndpoint, nil)

		var meta *models.Meta
		if env != nil {
			meta = env.Meta
		}
		return usersLoadedMsg{meta: meta, err: users.Error()}
	}
}
