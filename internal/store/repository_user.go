// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/models"
)

type userRecord struct {
	user         models.User
	passwordHash []byte
}

// userRepository is the in-memory implementation of [UserRepository].
// Emails are compared case-insensitively.
type userRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*userRecord
	byEmail map[string]int64

	logger *logger.Logger
}

func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		byID:    make(map[int64]*userRecord),
		byEmail: make(map[string]int64),
		logger:  logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := r.byEmail[key]; exists {
		log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already registered")
		return models.User{}, ErrEmailAlreadyExists
	}

	r.nextID++
	now := models.NewTimestamp(time.Now().UTC())
	user.ID = r.nextID
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID] = &userRecord{user: user, passwordHash: slices.Clone(passwordHash)}
	r.byEmail[key] = user.ID

	return user, nil
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (models.User, []byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return models.User{}, nil, ErrUserNotFound
	}

	rec := r.byID[id]
	return rec.user, slices.Clone(rec.passwordHash), nil
}

func (r *userRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return rec.user, nil
}

func (r *userRepository) ListUsers(_ context.Context, skip, limit int) ([]models.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	total := len(ids)
	skip = min(max(skip, 0), total)
	end := total
	if limit >= 0 {
		end = min(skip+limit, total)
	}

	users := make([]models.User, 0, end-skip)
	for _, id := range ids[skip:end] {
		users = append(users, r.byID[id].user)
	}

	return users, total, nil
}

func (r *userRepository) UpdateUser(_ context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	req.Apply(&rec.user)
	rec.user.UpdatedAt = models.NewTimestamp(time.Now().UTC())
	return rec.user, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
