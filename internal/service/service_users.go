// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/internal/validators"
	"github.com/MKhiriev/beyond-client/models"
)

const (
	DefaultUsersLimit = 100
	MaxUsersLimit     = 1000
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// ListUsers clamps limit to [0, MaxUsersLimit] and skip to non-negative.
func (s *userService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, int, error) {
	skip = max(skip, 0)
	limit = min(max(limit, 0), MaxUsersLimit)

	users, total, err := s.userRepository.ListUsers(ctx, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*userService.UpdateUser").Msg("invalid update request")
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, id, req)
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", id).
		Str("role", user.Role.String()).
		Bool("is_active", user.IsActive).
		Msg("user updated")
	return user, nil
}
