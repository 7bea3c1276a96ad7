// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the client and the dev API:
// context keys, trace ids, JWT issuing and parsing, bearer header parsing,
// JSON response writing and the resty client constructor.
package utils

import "context"

// contextKey is a private type for context keys, so keys never collide
// with other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id in a request context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
