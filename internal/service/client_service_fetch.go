// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/models"
)

// Resource fetches one endpoint whose envelope data decodes into T and
// keeps the outcome of the last request.
type Resource[T any] struct {
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	data    *T
	loading bool
	err     *models.APIError
}

// NewResource returns an idle resource bound to serverAdapter.
func NewResource[T any](serverAdapter adapter.ServerAdapter) *Resource[T] {
	return &Resource[T]{adapter: serverAdapter}
}

// Data returns the payload of the last successful request, or nil.
func (r *Resource[T]) Data() *T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data
}

// Loading reports whether a request is in flight.
func (r *Resource[T]) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// Error returns the error object of the last failed request, or nil.
func (r *Resource[T]) Error() *models.APIError {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Request sends method to endpoint with body as JSON (nil for none). On
// success the decoded data replaces Data and the envelope is returned. On
// failure Error is set and nil is returned: the server's error object for
// non-2xx answers, NETWORK_ERROR when the server could not be reached.
func (r *Resource[T]) Request(ctx context.Context, method, endpoint string, body any) *models.Envelope {
	if method == "" {
		method = http.MethodGet
	}

	r.mu.Lock()
	r.loading = true
	r.err = nil
	r.mu.Unlock()

	var out T
	env, err := r.adapter.Do(ctx, method, endpoint, body, &out)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false

	if err != nil {
		r.err = resourceError(env, err)
		return nil
	}

	r.data = &out
	return &env
}

func resourceError(env models.Envelope, err error) *models.APIError {
	if env.Error != nil {
		return env.Error
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		e := apiErr.Model()
		if e.Message == "" {
			e.Message = http.StatusText(apiErr.StatusCode)
		}
		return e
	}

	return &models.APIError{Code: CodeNetworkError, Message: MsgFailedToConnect}
}
