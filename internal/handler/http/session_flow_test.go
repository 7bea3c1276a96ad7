// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionManagerAgainstAPI drives the real client stack against the
// in-process API.
func TestSessionManagerAgainstAPI(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: api.server.URL}, logger.Nop())
	require.NoError(t, err)
	tokens := store.NewMemoryTokenStore()

	m := service.NewSessionManager(ctx, serverAdapter, tokens, logger.Nop())
	select {
	case <-m.Loaded():
	case <-time.After(5 * time.Second):
		t.Fatal("hydration did not finish")
	}
	assert.Equal(t, models.SessionAnonymous, m.Status())

	require.NoError(t, m.Register(ctx, "a@x.com", "secret", "Alice"))
	assert.False(t, m.State().IsAuthenticated)

	err = m.Register(ctx, "a@x.com", "secret", "Alice")
	require.Error(t, err)
	assert.Equal(t, "Email already registered", m.State().LastError)

	err = m.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, service.ErrLoginFailed)
	assert.Equal(t, "Incorrect email or password", m.State().LastError)

	require.NoError(t, m.Login(ctx, "a@x.com", "secret"))
	state := m.State()
	require.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "a@x.com", state.User.Email)
	assert.Empty(t, state.LastError)

	pair, err := tokens.Pair(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// a second manager over the same store hydrates from the persisted token
	restored := service.NewSessionManager(ctx, serverAdapter, tokens, logger.Nop())
	<-restored.Loaded()
	assert.Equal(t, models.SessionAuthenticated, restored.Status())

	m.Logout(ctx)
	assert.Equal(t, models.SessionAnonymous, m.Status())
	access, err := tokens.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, access)
}

func TestResourceAgainstAPI(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "a@x.com", "secret", "Alice")

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: api.server.URL}, logger.Nop())
	require.NoError(t, err)

	users := service.NewResource[[]models.User](serverAdapter)
	env := users.Request(context.Background(), "", "/api/v1/users", nil)

	require.Nil(t, users.Error())
	require.NotNil(t, users.Data())
	assert.Len(t, *users.Data(), 1)
	require.NotNil(t, env)
	require.NotNil(t, env.Meta)
	require.NotNil(t, env.Meta.Total)
	assert.Equal(t, 1, *env.Meta.Total)

	users.Request(context.Background(), "", "/api/v1/users/99", nil)
	require.NotNil(t, users.Error())
	assert.Equal(t, "USER_NOT_FOUND", users.Error().Code)
}
