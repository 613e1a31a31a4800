// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/metrics"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/utils"
	"github.com/simran-bhella/twitter-clone/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, account changes and
// the JWT token lifecycle, using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenParams carry the HMAC secret, issuer, audience and lifetime of
	// issued JWTs. Tokens not matching issuer or audience are rejected.
	tokenParams utils.TokenParams

	// passwordHashCost is the bcrypt work factor for new password hashes.
	passwordHashCost int

	uuidGenerator *utils.UUIDGenerator
	metrics       metrics.Provider

	// now returns the current time; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, metrics metrics.Provider, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenParams: utils.TokenParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			Duration: cfg.TokenDuration,
			SignKey:  cfg.TokenSignKey,
		},
		passwordHashCost: cfg.PasswordHashCost,
		uuidGenerator:    utils.NewUUIDGenerator(),
		metrics:          metrics,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// Username uniqueness is checked before email uniqueness, so a request
// clashing on both reports the username. The password is stored as a bcrypt
// hash.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if username, email or password is empty, or the
//     password exceeds models.MaxPasswordBytes.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists.
//   - A wrapped storage error if a repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (user models.User, err error) {
	log := logger.FromContext(ctx)
	defer func() { a.metrics.IncrementAuthOperations("register", err == nil) }()

	req = req.Normalize()
	username, email := req.Username, req.Email
	if username == "" || email == "" || req.Password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err = a.ensureUsernameFree(ctx, username); err != nil {
		return models.User{}, err
	}
	if err = a.ensureEmailFree(ctx, email); err != nil {
		return models.User{}, err
	}

	passwordHash, err := hashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.uuidGenerator.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    a.now(),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID.String()).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrWrongPassword so
// that callers cannot tell which usernames exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (user models.User, err error) {
	log := logger.FromContext(ctx)
	defer func() { a.metrics.IncrementAuthOperations("login", err == nil) }()

	req = req.Normalize()
	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", req.Username).Msg("login for unknown username")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Debug().Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured key, carries the configured issuer
// and audience and expires after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenParams, user, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other validation failure
// (bad signature, wrong issuer or audience, malformed subject) is normalised
// to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenParams)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UpdateUser applies the non-blank fields of req to the user.
//
// A changed username or email must still be unique. Supplying no field at
// all yields ErrNothingToUpdate.
func (a *authService) UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (user models.User, err error) {
	log := logger.FromContext(ctx)
	defer func() { a.metrics.IncrementAuthOperations("update", err == nil) }()

	req = req.Normalize()
	username, email := req.Username, req.Email
	if username == "" && email == "" && strings.TrimSpace(req.Password) == "" {
		return models.User{}, ErrNothingToUpdate
	}

	user, err = a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	changed := false

	if username != "" && username != user.Username {
		if err = a.ensureUsernameFree(ctx, username); err != nil {
			return models.User{}, err
		}
		user.Username = username
		changed = true
	}

	if email != "" && email != user.Email {
		if err = a.ensureEmailFree(ctx, email); err != nil {
			return models.User{}, err
		}
		user.Email = email
		changed = true
	}

	if strings.TrimSpace(req.Password) != "" {
		user.PasswordHash, err = hashPassword(req.Password, a.passwordHashCost)
		if err != nil {
			log.Err(err).Str("func", "*authService.UpdateUser").Msg("password hashing failed")
			return models.User{}, err
		}
		changed = true
	}

	if !changed {
		return user, nil
	}

	updated, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the account and every tweet it owns.
func (a *authService) DeleteUser(ctx context.Context, userID uuid.UUID) (err error) {
	defer func() { a.metrics.IncrementAuthOperations("delete", err == nil) }()

	if err = a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

func (a *authService) ensureUsernameFree(ctx context.Context, username string) error {
	exists, err := a.userRepository.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("username check failed: %w", err)
	}
	if exists {
		return store.ErrUsernameAlreadyExists
	}

	return nil
}

func (a *authService) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := a.userRepository.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("email check failed: %w", err)
	}
	if exists {
		return store.ErrEmailAlreadyExists
	}

	return nil
}

// hashPassword reports an over-long password as ErrInvalidDataProvided
// rather than letting bcrypt reject it.
func hashPassword(password string, cost int) (string, error) {
	if len(password) > models.MaxPasswordBytes {
		return "", fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidDataProvided, models.MaxPasswordBytes)
	}

	hash, err := utils.HashPassword(password, cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	return hash, nil
}
