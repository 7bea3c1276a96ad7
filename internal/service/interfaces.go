// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/beyond-client/models"
)

// AuthService registers accounts and issues the access/refresh token pairs
// of the development API.
type AuthService interface {
	// RegisterUser validates req and creates an active account with the
	// user role.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login returns the account matching the credentials. Unknown emails and
	// wrong passwords both give [ErrWrongCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateTokens issues a new token pair for user.
	CreateTokens(ctx context.Context, user models.User) (models.TokenPair, error)

	// RefreshTokens exchanges a refresh token for a new pair.
	RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// ParseAccessToken returns the user ID carried by a valid access token.
	ParseAccessToken(ctx context.Context, accessToken string) (int64, error)
}

// UserService reads and updates accounts for the development API.
type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, int, error)

	// UpdateUser validates req and applies it. Deactivating an account
	// makes its login and /me answer 403.
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
}
