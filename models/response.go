// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Envelope is the generic response wrapper used by every API endpoint:
//
//	{success, data?, message?, error?: {code, message, details?}, meta?}
//
// Data is kept raw so that callers decode it into the type they expect.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// DecodeData unmarshals the envelope payload into out. A missing or null
// payload leaves out untouched.
func (e Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" || out == nil {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}

// APIError is the error object carried by failed responses.
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes a single field validation failure.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta carries pagination info for list endpoints.
type Meta struct {
	Page  *int `json:"page,omitempty"`
	Total *int `json:"total,omitempty"`
}
