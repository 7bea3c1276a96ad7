// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/service"
	"github.com/MKhiriev/beyond-client/internal/utils"
)

const msgNotAuthenticated = "Not authenticated"

// auth is an HTTP middleware that enforces bearer authentication.
//
// A missing or non-Bearer "Authorization" header is rejected with 403 and a
// plain-text detail. A token that fails validation is rejected with 401
// INVALID_TOKEN. On success the user ID is stored in the request context
// under [utils.UserIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeDetailText(w, r, http.StatusForbidden, msgNotAuthenticated)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeDetailText(w, r, http.StatusForbidden, msgNotAuthenticated)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("error occurred during parsing token")
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			handleError(w, r, err)
			return
		}

		// downstream handlers read the user ID without re-parsing the token
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
