// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/validators"
	"github.com/MKhiriev/beyond-client/models"
	"github.com/go-chi/chi/v5"
)

const msgNotAnInteger = "value is not a valid integer"

// listUsers handles GET /api/v1/users?skip=&limit=.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	verr := &validators.ValidationError{}

	skip := queryInt(query.Get("skip"), 0, "skip", verr)
	limit := queryInt(query.Get("limit"), service.DefaultUsersLimit, "limit", verr)
	if len(verr.Details) > 0 {
		writeValidationError(w, r, "query", verr)
		return
	}

	users, total, err := h.services.UserService.ListUsers(r.Context(), skip, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, users, "Users retrieved successfully", &models.Meta{Total: &total})
}

// getUser handles GET /api/v1/users/{userID}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, user, "User retrieved successfully", nil)
}

// updateUser handles PATCH /api/v1/users/{userID}. Absent fields are kept.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, user, "User updated successfully", nil)
}

// pathUserID parses {userID}. An invalid value gives a 422 response and
// false.
func pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeValidationError(w, r, "path", &validators.ValidationError{
			Details: []models.ErrorDetail{{Field: "user_id", Message: msgNotAnInteger}},
		})
		return 0, false
	}
	return id, true
}

func queryInt(raw string, fallback int, field string, verr *validators.ValidationError) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		verr.Details = append(verr.Details, models.ErrorDetail{Field: field, Message: msgNotAnInteger})
		return fallback
	}
	return v
}
