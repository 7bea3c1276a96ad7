// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	signed, err := GenerateJWTToken("iss", 42, AccessTokenType, time.Hour, "key")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := ValidateAndParseJWTToken(signed, "key", "iss", AccessTokenType)

	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		tokenType string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", AccessTokenType, time.Hour, "key"},
		{"empty type", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", AccessTokenType, 0, "key"},
		{"empty key", "iss", AccessTokenType, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.tokenType, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	access, err := GenerateJWTToken("iss", 7, AccessTokenType, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(access, "other-key", "iss", AccessTokenType)
	assert.Error(t, err, "wrong signing key")

	_, err = ValidateAndParseJWTToken(access, "key", "other-issuer", AccessTokenType)
	assert.Error(t, err, "wrong issuer")

	_, err = ValidateAndParseJWTToken(access, "key", "iss", RefreshTokenType)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = ValidateAndParseJWTToken("not-a-token", "key", "iss", AccessTokenType)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	signed, err := GenerateJWTToken("iss", 1, AccessTokenType, time.Nanosecond, "key")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", AccessTokenType)
	assert.Error(t, err)
}

func TestParseUnverifiedClaims(t *testing.T) {
	signed, err := GenerateJWTToken("iss", 9, RefreshTokenType, time.Hour, "key")
	require.NoError(t, err)

	info, err := ParseUnverifiedClaims(signed)

	require.NoError(t, err)
	assert.Equal(t, "9", info.Subject)
	assert.Equal(t, RefreshTokenType, info.Type)
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(time.Now().Add(2*time.Hour)))
}

func TestParseUnverifiedClaims_Opaque(t *testing.T) {
	_, err := ParseUnverifiedClaims("abc")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer   abc ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAuthHeader, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}
