// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

// IsHealthy reports whether the API declared itself healthy.
func (h HealthStatus) IsHealthy() bool {
	return h.Status == "healthy"
}
