// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	server *httptest.Server
	cfg    *config.DevAPIConfig
}

func testConfig() *config.DevAPIConfig {
	return &config.DevAPIConfig{
		HTTPAddress:          "127.0.0.1:0",
		TokenSignKey:         "test-key",
		TokenIssuer:          "test-issuer",
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
		Version:              "1.0.0",
	}
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := testConfig()
	storages := store.NewStorages(logger.Nop())
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return &testAPI{server: srv, cfg: cfg}
}

// do sends body as JSON (raw if it is a string) and decodes the JSON
// response into a generic map.
func (a *testAPI) do(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, a.server.URL+path, reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func (a *testAPI) register(t *testing.T, email, password, name string) int64 {
	t.Helper()

	resp, body := a.do(t, http.MethodPost, "/api/v1/auth/register", models.RegisterRequest{Email: email, Password: password, Name: name}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	return int64(body["data"].(map[string]any)["id"].(float64))
}

func (a *testAPI) login(t *testing.T, email, password string) models.TokenPair {
	t.Helper()

	resp, body := a.do(t, http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	data := body["data"].(map[string]any)
	return models.TokenPair{
		AccessToken:  data["access_token"].(string),
		RefreshToken: data["refresh_token"].(string),
	}
}

// deactivate disables the account through PATCH /api/v1/users/{id}.
func (a *testAPI) deactivate(t *testing.T, id int64) {
	t.Helper()

	resp, body := a.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", id), map[string]any{"is_active": false}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
}

func detail(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	d, ok := body["detail"].(map[string]any)
	require.True(t, ok, "detail object expected, got %v", body)
	return d
}
