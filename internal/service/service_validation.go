// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/validators"
	"github.com/simran-bhella/twitter-clone/models"
)

// AuthValidationService validates request payloads before handing them to
// the wrapped AuthService.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req = req.Normalize()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during registration validation: %w", err)
	}

	return v.AuthService.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req = req.Normalize()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.AuthService.Login(ctx, req)
}

func (v *AuthValidationService) UpdateUser(ctx context.Context, userID uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	req = req.Normalize()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during account update validation: %w", err)
	}

	return v.AuthService.UpdateUser(ctx, userID, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// TweetValidationService validates tweet content before handing it to the
// wrapped TweetService.
type TweetValidationService struct {
	TweetService
	validator validators.Validator
}

func NewTweetValidationService(validator validators.Validator) TweetServiceWrapper {
	return &TweetValidationService{
		validator: validator,
	}
}

func (v *TweetValidationService) CreateTweet(ctx context.Context, userID uuid.UUID, req models.TweetRequest) (models.Tweet, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Tweet{}, fmt.Errorf("error during tweet validation: %w", err)
	}

	return v.TweetService.CreateTweet(ctx, userID, req)
}

func (v *TweetValidationService) UpdateTweet(ctx context.Context, userID, tweetID uuid.UUID, req models.TweetRequest) (models.Tweet, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Tweet{}, fmt.Errorf("error during tweet validation: %w", err)
	}

	return v.TweetService.UpdateTweet(ctx, userID, tweetID, req)
}

func (v *TweetValidationService) Wrap(inner TweetService) TweetService {
	v.TweetService = inner
	return v
}
