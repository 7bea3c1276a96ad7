// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so all of its methods are available, while
// leaving room for application-specific defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A zero timeout leaves the
// transport default (no client-side deadline) in place. Every request gets a
// fresh [TraceIDHeader] unless the caller already set one.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) == "" {
			r.SetHeader(TraceIDHeader, NewTraceID())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
