// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/beyond-client/models"
)

// UserRepository stores the accounts served by the development API.
type UserRepository interface {
	// CreateUser stores a new account and returns it with the ID and
	// timestamps filled in. Returns [ErrEmailAlreadyExists] when the email
	// is taken.
	CreateUser(ctx context.Context, user models.User, passwordHash []byte) (models.User, error)

	// FindUserByEmail returns the account and its password hash, or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, []byte, error)

	// FindUserByID returns the account or [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns up to limit accounts ordered by ID after skipping
	// skip of them, plus the total number of accounts.
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, int, error)

	// UpdateUser applies the set fields of req to the account and returns
	// it, or [ErrUserNotFound].
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
}
