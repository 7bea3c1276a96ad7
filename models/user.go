// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire and domain types shared by the client
// packages: the remote user record, the API response envelope, the
// credential pair and the in-memory session snapshot.
package models

// User is the account record owned by the remote API and returned by
// GET /api/v1/auth/me. The client never mutates it.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Role is one of [RoleAdmin], [RoleManager], [RoleUser], [RoleGuest].
	Role Role `json:"role"`

	// IsActive reports whether the account may log in.
	IsActive bool `json:"is_active"`

	// CreatedAt is the account creation timestamp.
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is the last modification timestamp. Older API versions omit it.
	UpdatedAt Timestamp `json:"updated_at,omitzero"`
}

// DisplayName returns Name, falling back to Email when the name is blank.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// UpdateUserRequest is the body of PATCH /api/v1/users/{id}. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Apply copies the set fields of req onto u.
func (req UpdateUserRequest) Apply(u *User) {
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
}
