// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/internal/validators"
)

type errorResponse struct {
	status  int
	code    string
	message string
}

var errorStatusMap = []struct {
	target error
	resp   errorResponse
}{
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, codeEmailExists, "Email already registered"}},
	{service.ErrWrongCredentials, errorResponse{http.StatusUnauthorized, codeInvalidCredentials, "Incorrect email or password"}},
	{service.ErrInactiveUser, errorResponse{http.StatusForbidden, codeInactiveUser, "User account is inactive"}},
	{service.ErrInvalidRefreshToken, errorResponse{http.StatusUnauthorized, codeInvalidRefreshToken, "Invalid refresh token"}},
	{service.ErrInvalidUser, errorResponse{http.StatusUnauthorized, codeInvalidUser, "User not found or inactive"}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, codeInvalidToken, "Could not validate credentials"}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, codeUserNotFound, "User not found"}},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.resp
		}
	}
	return errorResponse{http.StatusInternalServerError, codeInternalError, "Internal server error"}
}

// handleError writes the response for an error returned by the service
// layer. Validation errors use the list form of "detail".
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		writeValidationError(w, r, "body", verr)
		return
	}

	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("unexpected error")
	}
	writeDetail(w, r, resp.status, resp.code, resp.message)
}
