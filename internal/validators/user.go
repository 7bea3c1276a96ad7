// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beyond-client/models"
)

const FieldRole = "role"

const msgInvalidRole = "value is not a valid enumeration member; permitted: 'admin', 'manager', 'user', 'guest'"

// UserValidator validates account updates. Only the fields present in the
// request are checked.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.UpdateUserRequest:
		verr := &ValidationError{}
		if value.Name != nil {
			validateName(verr, *value.Name)
		}
		if value.Role != nil && !value.Role.IsValid() {
			verr.add(FieldRole, msgInvalidRole)
		}
		return verr.orNil()
	case *models.UpdateUserRequest:
		return v.Validate(ctx, *value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}
