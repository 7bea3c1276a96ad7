// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/mock"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authenticatedState() models.SessionState {
	var s models.SessionState
	s.SetUser(models.User{ID: 7, Email: "a@x.com", Name: "Alice", Role: models.RoleUser, IsActive: true})
	return s
}

func TestStatusModel_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().State().Return(authenticatedState()).AnyTimes()

	m := NewStatusModel(context.Background(), session, store.NewMemoryTokenStore(), mock.NewMockServerAdapter(ctrl))
	m.Update(healthMsg{status: models.HealthStatus{Status: "healthy"}})

	view := m.View()
	assert.Contains(t, view, "authenticated")
	assert.Contains(t, view, "a@x.com")
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "healthy")
	assert.Contains(t, view, "l: выйти")
}

func TestStatusModel_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Health(gomock.Any()).Return(models.HealthStatus{}, fmt.Errorf("get /health: %w", adapter.ErrNetwork))

	m := NewStatusModel(context.Background(), mock.NewMockSessionService(ctrl), store.NewMemoryTokenStore(), server)
	msg := m.Init()()

	m.Update(msg)
	assert.Contains(t, m.health, "Сервер недоступен")
}

func TestStatusModel_RefreshAndLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().State().Return(authenticatedState()).AnyTimes()
	session.EXPECT().Refresh(gomock.Any())
	session.EXPECT().Logout(gomock.Any())

	m := NewStatusModel(context.Background(), session, store.NewMemoryTokenStore(), mock.NewMockServerAdapter(ctrl))

	_, cmd := m.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	_, ignored := m.Update(keyRunes("l"))
	assert.Nil(t, ignored, "actions are ignored while busy")

	_, tick := m.Update(cmd())
	assert.NotNil(t, tick)
	assert.False(t, m.busy)
	assert.Equal(t, "Сессия обновлена", m.status)

	_, cmd = m.Update(keyRunes("l"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "Вы вышли из аккаунта", m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestStatusModel_LogoutNeedsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewStatusModel(context.Background(), anonymousSession(ctrl), store.NewMemoryTokenStore(), mock.NewMockServerAdapter(ctrl))

	_, cmd := m.Update(keyRunes("l"))
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
}

func TestStatusModel_CopyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := store.NewMemoryTokenStore()
	require.NoError(t, tokens.SavePair(context.Background(), models.TokenPair{AccessToken: "acc", RefreshToken: "ref"}))

	m := NewStatusModel(context.Background(), mock.NewMockSessionService(ctrl), tokens, mock.NewMockServerAdapter(ctrl))
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	_, tick := m.Update(cmd())

	assert.Equal(t, "acc", copied)
	assert.Equal(t, "Токен скопирован в буфер обмена", m.status)
	assert.NotNil(t, tick)
}

func TestStatusModel_CopyTokenErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	m := NewStatusModel(context.Background(), mock.NewMockSessionService(ctrl), store.NewMemoryTokenStore(), mock.NewMockServerAdapter(ctrl))
	msg := m.cmdCopyToken()()
	assert.ErrorIs(t, msg.(copiedMsg).err, errNoAccessToken)

	tokens := mock.NewMockTokenStore(ctrl)
	tokens.EXPECT().AccessToken(gomock.Any()).Return("acc", nil)
	m = NewStatusModel(context.Background(), mock.NewMockSessionService(ctrl), tokens, mock.NewMockServerAdapter(ctrl))
	clipErr := errors.New("no clipboard utility")
	m.copyToClipboard = func(string) error { return clipErr }

	m.Update(m.cmdCopyToken()())
	assert.Contains(t, m.errMsg, "no clipboard utility")
	assert.Empty(t, m.status)
}

func TestStatusModel_EscGoesBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewStatusModel(context.Background(), mock.NewMockSessionService(ctrl), store.NewMemoryTokenStore(), mock.NewMockServerAdapter(ctrl))
	m.busy = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}
