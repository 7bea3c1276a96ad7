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

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on
// submission. On success it opens the session page.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			newInput("email", 254, false),
			newInput("password", 256, true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error shows the session's
//     last error, on success resets the form and opens the session page.
//   - esc            navigates back to the menu.
//   - tab/shift+tab  moves focus between inputs.
//   - enter          validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
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
		return m, func() tea.Msg { return NavigateTo{Page: pageStatus} }
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

			email := strings.TrimSpace(m.form.value(0))
			pass := m.form.value(1)
			if email == "" || pass == "" {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return LoginResult{
			Err:   session.Login(ctx, email, pass),
			Email: email,
		}
	}
}
