// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/models"
)

// TokenParams holds the settings shared by token issuance and validation.
type TokenParams struct {
	Issuer   string
	Audience string
	Duration time.Duration
	SignKey  string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - sub:         the user ID
//   - unique_name: the username
//   - email:       the user's e-mail
//   - iss, aud:    from params
//   - iat, nbf:    now
//   - exp:         now plus params.Duration
//   - jti:         a random UUID
//
// Returns an error if any of the params are empty or zero, or if the user
// has no ID.
func GenerateJWTToken(params TokenParams, user models.User, now time.Time) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if user.ID == uuid.Nil {
		return models.Token{}, errors.New("user ID is required for generating JWT Token")
	}

	expiresAt := now.Add(params.Duration)
	claims := &models.TokenClaims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{params.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - HS256 signature verification with params.SignKey; other algorithms are rejected
//   - exp presence and expiry, with no leeway
//   - iss and aud checks against params
//   - sub presence and conversion to a UUID
//
// An expired token yields an error wrapping [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Token, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		UserID:       userID,
		Username:     claims.Username,
		Email:        claims.Email,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
