// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenPair is the credential pair issued by POST /api/v1/auth/login.
// Both values are opaque to the client and are persisted together.
type TokenPair struct {
	// AccessToken is the bearer credential attached to authenticated calls.
	AccessToken string `json:"access_token"`

	// RefreshToken is persisted alongside AccessToken but not exchanged by
	// the client.
	RefreshToken string `json:"refresh_token"`
}

// IsEmpty reports whether the pair carries no access token.
func (p TokenPair) IsEmpty() bool {
	return p.AccessToken == ""
}
