// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the start page. An item without a page quits the program.
type MenuModel struct {
	session service.SessionService

	items  []menuItem
	idx    int
	status string
}

func NewMenuModel(session service.SessionService) *MenuModel {
	return &MenuModel{
		session: session,
		items: []menuItem{
			{title: "Войти", page: pageLogin},
			{title: "Зарегистрироваться", page: pageRegister},
			{title: "Сессия", page: pageStatus},
			{title: "Пользователи", page: pageUsers},
			{title: "Выход"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(RegisterSuccessNotice); ok {
		if notice.Email != "" {
			m.status = "Пользователь " + notice.Email + " успешно зарегистрирован"
		} else {
			m.status = "Регистрация прошла успешно"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		item := m.items[m.idx]
		if item.page == "" {
			return m, tea.Quit
		}
		return m, func() tea.Msg { return NavigateTo{Page: item.page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // selection marker and space

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(renderOK(m.status))
	b.WriteString(sessionLine(m.session.State()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}

func sessionLine(state models.SessionState) string {
	switch state.Status() {
	case models.SessionLoading:
		return "Сессия: загрузка..."
	case models.SessionAuthenticated:
		return "Сессия: " + state.User.DisplayName() + " (" + state.User.Role.String() + ")"
	default:
		return "Сессия: не выполнен вход"
	}
}
