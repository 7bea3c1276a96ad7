// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/beyond-client/internal/config"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/internal/utils"
	"github.com/MKhiriev/beyond-client/internal/validators"
	"github.com/MKhiriev/beyond-client/models"
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt cost of stored password hashes.
var passwordHashCost = bcrypt.DefaultCost

// authService is the concrete implementation of [AuthService].
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	tokenSignKey         string
	tokenIssuer          string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, cfg *config.DevAPIConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		validator:            validators.NewAuthValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RegisterUser").Msg("invalid register request")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:    strings.TrimSpace(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Role:     models.RoleUser,
		IsActive: true,
	}, hash)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid login request")
		return models.User{}, err
	}

	user, hash, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", req.Email).Msg("login for unknown email")
			return models.User{}, ErrWrongCredentials
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

func (a *authService) CreateTokens(_ context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, utils.AccessTokenType, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, utils.RefreshTokenType, a.refreshTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *authService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	userID, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, utils.RefreshTokenType)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.RefreshTokens").Send()
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil || !user.IsActive {
		return models.TokenPair{}, ErrInvalidUser
	}

	return a.CreateTokens(ctx, user)
}

// ParseAccessToken normalises every validation failure (expired, wrong
// issuer, refresh token passed as access) to [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseAccessToken(ctx context.Context, accessToken string) (int64, error) {
	userID, err := utils.ValidateAndParseJWTToken(accessToken, a.tokenSignKey, a.tokenIssuer, utils.AccessTokenType)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseAccessToken").Send()
		return 0, ErrTokenIsExpiredOrInvalid
	}
	return userID, nil
}
