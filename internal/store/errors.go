// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	ErrTokenNotFound = errors.New("token not found")
	ErrEmptyDSN      = errors.New("empty database dsn")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)
