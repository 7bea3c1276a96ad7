// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNetwork            = errors.New("network error")
)

// User-facing messages used when the server gives none.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgNetworkError       = "Network error"

	CodeNetworkError   = "NETWORK_ERROR"
	MsgFailedToConnect = "Failed to connect to server"
)

// OperationError is returned by [SessionManager.Login] and
// [SessionManager.Register]. Its message is the user-facing text; it matches
// the operation sentinel and the underlying cause with [errors.Is].
type OperationError struct {
	Op      error
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Err}
}

// Errors of the development API services.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongCredentials        = errors.New("incorrect email or password")
	ErrInactiveUser            = errors.New("user account is inactive")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
	ErrInvalidUser             = errors.New("user not found or inactive")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
