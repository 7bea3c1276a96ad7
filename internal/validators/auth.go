// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/beyond-client/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

const maxNameLength = 100

// AuthValidator validates login and registration requests.
type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate returns a [*ValidationError] listing every invalid field, or one
// of [ErrUnsupportedType] and [ErrUnknownField].
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validate(map[string]string{
			FieldEmail:    value.Email,
			FieldPassword: value.Password,
		}, fields)
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)
	case models.RegisterRequest:
		return v.validate(map[string]string{
			FieldEmail:    value.Email,
			FieldPassword: value.Password,
			FieldName:     value.Name,
		}, fields)
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AuthValidator) validate(values map[string]string, fields []string) error {
	if len(fields) == 0 {
		for field := range values {
			fields = append(fields, field)
		}
	}
	// stable order of details
	slices.SortFunc(fields, func(a, b string) int { return fieldOrder(a) - fieldOrder(b) })

	verr := &ValidationError{}
	for _, field := range fields {
		value, ok := values[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		switch field {
		case FieldEmail:
			validateEmail(verr, value)
		case FieldPassword:
			if value == "" {
				verr.add(FieldPassword, "field required")
			}
		case FieldName:
			validateName(verr, value)
		}
	}

	return verr.orNil()
}

func validateEmail(verr *ValidationError, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		verr.add(FieldEmail, "field required")
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		verr.add(FieldEmail, "value is not a valid email address")
	}
}

func validateName(verr *ValidationError, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		verr.add(FieldName, "field required")
	case len([]rune(name)) > maxNameLength:
		verr.add(FieldName, fmt.Sprintf("ensure this value has at most %d characters", maxNameLength))
	}
}

func fieldOrder(field string) int {
	switch field {
	case FieldEmail:
		return 0
	case FieldPassword:
		return 1
	case FieldName:
		return 2
	default:
		return 3
	}
}
