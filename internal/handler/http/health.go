// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/beyond-client/models"
)

const (
	healthyStatus = "healthy"
	versionHeader = "X-App-Version"
)

// health handles GET /health. The body is not wrapped in the envelope.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.version != "" {
		w.Header().Set(versionHeader, h.version)
	}
	writeBody(w, r, http.StatusOK, models.HealthStatus{Status: healthyStatus})
}
