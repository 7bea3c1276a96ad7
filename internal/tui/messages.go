// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/beyond-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLoading  = "loading"
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageStatus   = "status"
	pageUsers    = "users"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced when a login attempt returns.
type LoginResult struct {
	Err   error
	Email string
}

// RegisterResult is produced when a registration attempt returns.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is shown by the menu after a successful registration.
type RegisterSuccessNotice struct {
	Email string
}

type sessionLoadedMsg struct{}

// sessionChangedMsg asks the active page to re-render after the session
// changed.
type sessionChangedMsg struct{}

type refreshDoneMsg struct{}

type logoutDoneMsg struct{}

type healthMsg struct {
	status models.HealthStatus
	err    error
}

type usersLoadedMsg struct {
	meta *models.Meta
	err  *models.APIError
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
