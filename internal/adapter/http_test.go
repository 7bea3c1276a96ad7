// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/utils"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeBody(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// closedServerURL returns the address of a server that no longer listens.
func closedServerURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return srv.URL
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "", wantErr: ErrEmptyAddress},
		{raw: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, loginPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.TraceIDHeader))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req.Email)
		assert.Equal(t, "pw", req.Password)

		writeBody(t, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"data":    map[string]string{"access_token": "A1", "refresh_token": "R1"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	pair, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "A1", RefreshToken: "R1"}, pair)
}

func TestLogin_InvalidCredentials_Envelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   map[string]string{"code": "INVALID_CREDENTIALS", "message": "Invalid email or password"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestLogin_InvalidCredentials_DetailObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusUnauthorized, map[string]any{
			"detail": map[string]string{"code": "INVALID_CREDENTIALS", "message": "Incorrect email or password"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, "Incorrect email or password", apiErr.Message)
}

func TestLogin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusForbidden, map[string]any{
			"detail": map[string]string{"code": "INACTIVE_USER", "message": "User account is inactive"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLogin_NonJSONSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLogin_NetworkError(t *testing.T) {
	a := newTestAdapter(t, closedServerURL())
	_, err := a.Login(context.Background(), models.LoginRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, registerPath, r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ann", req.Name)

		writeBody(t, w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"id": 3, "email": req.Email, "name": req.Name},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Email: "n@x.io", Password: "pw", Name: "Ann"})

	assert.NoError(t, err)
}

func TestRegister_EmailExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusBadRequest, map[string]any{
			"detail": map[string]string{"code": "EMAIL_EXISTS", "message": "Email already registered"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrBadRequest)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

func TestRegister_ValidationList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{
				{"loc": []any{"body", "email"}, "msg": "value is not a valid email address"},
				{"loc": []any{"body", "password"}, "msg": "field required"},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrUnprocessable)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Equal(t, "value is not a valid email address", apiErr.Message)
	assert.Equal(t, []models.ErrorDetail{
		{Field: "email", Message: "value is not a valid email address"},
		{Field: "password", Message: "field required"},
	}, apiErr.Details)
}

func TestRegister_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrInternalServerError)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, apiErr.HasBody())
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, mePath, r.URL.Path)
		assert.Equal(t, "Bearer A1", r.Header.Get("Authorization"))

		writeBody(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"id": 1, "email": "a@b.c", "name": "A", "role": "user",
				"is_active": true, "created_at": "2024-01-01T00:00:00Z",
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Me(context.Background(), "A1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@b.c", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusUnauthorized, map[string]any{
			"detail": map[string]string{"code": "INVALID_TOKEN", "message": "Could not validate credentials"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Me(context.Background(), "stale")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_MalformedUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusOK, map[string]any{"success": true, "data": "not-a-user"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Me(context.Background(), "A1")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, logoutPath, r.URL.Path)
		assert.Equal(t, "Bearer A1", r.Header.Get("Authorization"))
		writeBody(t, w, http.StatusOK, map[string]any{"success": true, "message": "Logged out"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Logout(context.Background(), "A1"))
	assert.Equal(t, 1, calls)
}

func TestLogout_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeBody(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.Logout(context.Background(), ""))
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		body any
		want models.HealthStatus
	}{
		{
			name: "bare",
			body: map[string]string{"status": "healthy"},
			want: models.HealthStatus{Status: "healthy"},
		},
		{
			name: "envelope",
			body: map[string]any{"success": true, "data": map[string]string{"status": "healthy", "service": "api"}},
			want: models.HealthStatus{Status: "healthy", Service: "api"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, healthPath, r.URL.Path)
				writeBody(t, w, http.StatusOK, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.Health(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsHealthy())
		})
	}
}

func TestHealth_NetworkError(t *testing.T) {
	a := newTestAdapter(t, closedServerURL())
	_, err := a.Health(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Do ───────────────────────────────────────────────────────────────────────

func TestDo_Success(t *testing.T) {
	type item struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/items", r.URL.Path)
		writeBody(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []item{{ID: 1, Name: "x"}},
			"meta":    map[string]int{"page": 1, "total": 1},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	var out []item
	env, err := a.Do(context.Background(), http.MethodGet, "/api/v1/items", nil, &out)

	require.NoError(t, err)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	require.NotNil(t, env.Meta.Total)
	assert.Equal(t, 1, *env.Meta.Total)
	assert.Equal(t, []item{{ID: 1, Name: "x"}}, out)
}

func TestDo_ErrorKeepsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(t, w, http.StatusNotFound, map[string]any{
			"detail": map[string]string{"code": "NOT_FOUND", "message": "no such item"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	env, err := a.Do(context.Background(), http.MethodDelete, "/api/v1/items/9", nil, nil)

	assert.ErrorIs(t, err, ErrNotFound)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "no such item", env.Error.Message)
}

func TestDo_NetworkError(t *testing.T) {
	a := newTestAdapter(t, closedServerURL())
	env, err := a.Do(context.Background(), http.MethodPatch, "/api/v1/items/1", map[string]string{"name": "y"}, nil)

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Nil(t, env.Error)
}

// ── APIError ─────────────────────────────────────────────────────────────────

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "http 401: INVALID_TOKEN: bad", (&APIError{StatusCode: 401, Code: "INVALID_TOKEN", Message: "bad"}).Error())
	assert.Equal(t, "http 400: bad", (&APIError{StatusCode: 400, Message: "bad"}).Error())
	assert.Equal(t, "http 418: I'm a teapot", (&APIError{StatusCode: 418}).Error())
	assert.ErrorIs(t, &APIError{StatusCode: 418}, ErrUnexpectedStatus)
}

func TestMe_NaiveTimestamps(t *testing.T) {
	// datetimes without an offset, as written for naive UTC values
	const body = `{"success":true,"data":{"id":1,"email":"a@b.c","name":"A","role":"user","is_active":true,` +
		`"created_at":"2024-01-15T10:30:00.123456","updated_at":"2024-01-15T10:30:00"},` +
		`"message":"User retrieved successfully","meta":null}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Me(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.UTC), user.CreatedAt.Time)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), user.UpdatedAt.Time)
}
