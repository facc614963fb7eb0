// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/password"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
)

// authService is the concrete implementation of AuthService.
// Raw passwords never leave Signup and Login: they are hashed or verified
// and then dropped.
type authService struct {
	userRepository store.UserRepository
	hasher         password.Hasher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher password.Hasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Returns the persisted user or:
//   - a validators.FieldError for a blank username or an empty password;
//   - store.ErrUsernameAlreadyExists (wrapped) when the name is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid signup data provided")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("signup: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, req.Profile(), hash)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing user.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, hash, err := a.userRepository.FindCredentials(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("credentials lookup failed")
		return models.User{}, fmt.Errorf("credentials lookup failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, hash) {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (a *authService) UserByID(ctx context.Context, id int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
