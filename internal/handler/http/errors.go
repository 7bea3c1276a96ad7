// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserIDInContext means a protected handler ran without the auth
	// middleware.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)

// Error codes of the {"detail":{"code","message"}} responses.
const (
	codeEmailExists         = "EMAIL_EXISTS"
	codeInvalidCredentials  = "INVALID_CREDENTIALS"
	codeInactiveUser        = "INACTIVE_USER"
	codeInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
	codeInvalidUser         = "INVALID_USER"
	codeInvalidToken        = "INVALID_TOKEN"
	codeUserNotFound        = "USER_NOT_FOUND"
	codeInternalError       = "INTERNAL_ERROR"
)
