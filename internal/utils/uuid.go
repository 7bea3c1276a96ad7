// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// TraceIDHeader carries the per-request trace id between client and API.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a time-ordered UUIDv7, falling back to a random v4.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
