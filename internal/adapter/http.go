// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/utils"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath    = "/api/v1/auth/login"
	registerPath = "/api/v1/auth/register"
	mePath       = "/api/v1/auth/me"
	logoutPath   = "/api/v1/auth/logout"
	healthPath   = "/health"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and the
// optional request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger.WithComponent("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/auth/login and decodes the token pair from the envelope data.
// A 2xx answer without an access token is reported as [ErrMalformedResponse].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	var pair models.TokenPair
	if _, err := h.Do(ctx, http.MethodPost, loginPath, req, &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}
	if pair.IsEmpty() {
		return models.TokenPair{}, fmt.Errorf("login response: %w: no access token", ErrMalformedResponse)
	}

	return pair, nil
}

// Register implements [ServerAdapter]. It POSTs the new account to
// POST /api/v1/auth/register. The created user in the response is ignored.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	if _, err := h.Do(ctx, http.MethodPost, registerPath, req, nil); err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return nil
}

// Me implements [ServerAdapter]. It GETs /api/v1/auth/me with the bearer
// token and decodes the user record.
func (h *httpServerAdapter) Me(ctx context.Context, accessToken string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx, accessToken).Get(mePath)
	if _, err = h.decode(mePath, resp, err, &user); err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}

	return user, nil
}

// Logout implements [ServerAdapter]. It POSTs to /api/v1/auth/logout with the
// bearer token.
func (h *httpServerAdapter) Logout(ctx context.Context, accessToken string) error {
	resp, err := h.authedRequest(ctx, accessToken).Post(logoutPath)
	if _, err = h.decode(logoutPath, resp, err, nil); err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return nil
}

// Health implements [ServerAdapter]. The endpoint answers with a bare
// {"status": ...} object, an envelope around it is accepted as well.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return models.HealthStatus{}, h.networkError(healthPath, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}

	var status models.HealthStatus
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.HealthStatus{}, fmt.Errorf("health response: %w: %v", ErrMalformedResponse, err)
	}
	if status.Status == "" {
		var env models.Envelope
		if err = json.Unmarshal(resp.Body(), &env); err == nil {
			_ = env.DecodeData(&status)
		}
	}

	return status, nil
}

// Do implements [ServerAdapter].
func (h *httpServerAdapter) Do(ctx context.Context, method, endpoint string, body, out any) (models.Envelope, error) {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	return h.decode(endpoint, resp, err, out)
}

// decode turns a resty result into an envelope. Transport failures wrap
// [ErrNetwork], non-2xx answers return [*APIError] together with whatever
// envelope the body carried.
func (h *httpServerAdapter) decode(endpoint string, resp *resty.Response, reqErr error, out any) (models.Envelope, error) {
	if reqErr != nil {
		return models.Envelope{}, h.networkError(endpoint, reqErr)
	}

	var env models.Envelope
	body := bytes.TrimSpace(resp.Body())
	var decodeErr error
	if len(body) > 0 {
		decodeErr = json.Unmarshal(body, &env)
	}

	if err := mapHTTPError(resp); err != nil {
		var apiErr *APIError
		if env.Error == nil && errors.As(err, &apiErr) && apiErr.HasBody() {
			env.Error = apiErr.Model()
		}
		h.logger.Debug().Err(err).
			Str("func", "httpServerAdapter.decode").
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode()).
			Msg("request failed")
		return env, err
	}

	if decodeErr != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	if err := env.DecodeData(out); err != nil {
		return env, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return env, nil
}

func (h *httpServerAdapter) networkError(endpoint string, err error) error {
	h.logger.Debug().Err(err).
		Str("func", "httpServerAdapter.networkError").
		Str("endpoint", endpoint).
		Msg("transport failure")
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
