// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/beyond-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidator_Validate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	name := "Bob"
	role := models.RoleAdmin
	active := false
	assert.NoError(t, v.Validate(ctx, models.UpdateUserRequest{}))
	assert.NoError(t, v.Validate(ctx, &models.UpdateUserRequest{Name: &name, Role: &role, IsActive: &active}))

	blank := " "
	long := strings.Repeat("x", maxNameLength+1)
	bad := models.Role("root")

	tests := []struct {
		name  string
		req   models.UpdateUserRequest
		field string
	}{
		{"blank name", models.UpdateUserRequest{Name: &blank}, FieldName},
		{"long name", models.UpdateUserRequest{Name: &long}, FieldName},
		{"unknown role", models.UpdateUserRequest{Role: &bad}, FieldRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *ValidationError
			require.ErrorAs(t, v.Validate(ctx, tt.req), &verr)
			require.Len(t, verr.Details, 1)
			assert.Equal(t, tt.field, verr.Details[0].Field)
		})
	}
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), models.LoginRequest{}), ErrUnsupportedType)
}
