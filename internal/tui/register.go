// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regName = iota
	regEmail
	regPassword
	regRepeat
)

// RegisterModel is the Bubble Tea model for the registration screen. On
// success it resets the form and navigates back to the menu with a
// [RegisterSuccessNotice]. Registration never logs the user in.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			newInput("name", 100, false),
			newInput("email", 254, false),
			newInput("password", 256, true),
			newInput("repeat password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = m.session.State().LastError
			if m.errMsg == "" {
				m.errMsg = humanizeServerUnavailableError(result.Err)
			}
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		email := result.Email
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: email}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.form.value(regName))
			email := strings.TrimSpace(m.form.value(regEmail))
			pass := m.form.value(regPassword)
			repeat := m.form.value(regRepeat)

			if name == "" || email == "" || pass == "" {
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, pass, name)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Имя     ", "Email   ", "Пароль  ", "Повтор  "}

	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(email, pass, name string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return RegisterResult{
			Err:   session.Register(ctx, email, pass, name),
			Email: email,
		}
	}
}
