// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/utils"
	"github.com/MKhiriev/beyond-client/internal/validators"
	"github.com/MKhiriev/beyond-client/models"
)

const refreshTokenCookie = "refresh_token"

// register handles POST /api/v1/auth/register. Registration does not issue
// tokens.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user registered")
	writeSuccess(w, r, http.StatusCreated, user, "User registered successfully", nil)
}

// login handles POST /api/v1/auth/login. The refresh token is also set as
// an HttpOnly cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx := r.Context()
	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.CreateTokens(ctx, user)
	if err != nil {
		handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(h.refreshTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, r, http.StatusOK, pair, "Login successful", nil)
}

// refresh handles POST /api/v1/auth/refresh.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		writeValidationError(w, r, "body", &validators.ValidationError{
			Details: []models.ErrorDetail{{Field: "refresh_token", Message: "field required"}},
		})
		return
	}

	pair, err := h.services.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, pair, "Token refreshed successfully", nil)
}

// me handles GET /api/v1/auth/me behind the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		handleError(w, r, ErrNoUserIDInContext)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !user.IsActive {
		writeDetail(w, r, http.StatusForbidden, codeInactiveUser, "Inactive user")
		return
	}

	writeSuccess(w, r, http.StatusOK, user, "User retrieved successfully", nil)
}

// logout handles POST /api/v1/auth/logout. Tokens are stateless, so only the
// cookie is cleared.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeSuccess(w, r, http.StatusOK, nil, "Logout successful", nil)
}
