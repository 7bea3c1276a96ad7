// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "client")

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "func")
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", path)

	l.Warn().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "client").WithComponent("session")

	l.Debug().Send()

	assert.Contains(t, buf.String(), `"component":"session"`)
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "devapi")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "from ctx")
}

func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "devapi")

	r := httptest.NewRequest("GET", "/health", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Info().Msg("from request")

	assert.Contains(t, buf.String(), "from request")
}

func TestNop_DiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("ignored")
	})
}
