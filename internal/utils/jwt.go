// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header")
	ErrEmptyTokenSubject  = errors.New("empty subject error")
)

// TokenClaims are the registered claims plus the token type.
type TokenClaims struct {
	jwt.RegisteredClaims
	Type string `json:"type"`
}

// TokenInfo is the unverified view of a token the client logs on hydration.
type TokenInfo struct {
	Subject   string
	Type      string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry earlier than now.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// GenerateJWTToken signs an HS256 token for userID with the given type and
// lifetime. All parameters are required.
func GenerateJWTToken(issuer string, userID int64, tokenType string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenType == "" || tokenDuration <= 0 || signKey == "" {
		return "", ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        NewTraceID(),
		},
		Type: tokenType,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken verifies signature, issuer, expiry and type of
// tokenString and returns the user id from the subject claim.
func ValidateAndParseJWTToken(tokenString, signKey, issuer, tokenType string) (int64, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Type != tokenType {
		return 0, ErrWrongTokenType
	}
	if claims.Subject == "" {
		return 0, ErrEmptyTokenSubject
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return userID, nil
}

// ParseUnverifiedClaims decodes a token without verifying it. The client
// has no signing key, so this is only used for diagnostics.
func ParseUnverifiedClaims(tokenString string) (TokenInfo, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse unverified token: %w", err)
	}

	info := TokenInfo{Subject: claims.Subject, Type: claims.Type}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// ParseBearerToken extracts the token from "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
