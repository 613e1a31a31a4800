// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/models"
)

var testTokenParams = TokenParams{
	Issuer:   "test-issuer",
	Audience: "test-audience",
	Duration: time.Hour,
	SignKey:  strings.Repeat("s", 32),
}

func testUser() models.User {
	return models.User{
		ID:       uuid.MustParse("0192f5c1-2222-7000-8000-000000000002"),
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWTToken(testTokenParams, testUser(), now)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != testUser().ID {
		t.Errorf("expected user ID %s, got %s", testUser().ID, token.UserID)
	}

	claims := &models.TokenClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	if err != nil {
		t.Fatalf("expected parsable token, got: %v", err)
	}
	if claims.Issuer != testTokenParams.Issuer {
		t.Errorf("expected issuer %s, got %s", testTokenParams.Issuer, claims.Issuer)
	}
	if claims.Subject != testUser().ID.String() {
		t.Errorf("expected subject %s, got %s", testUser().ID, claims.Subject)
	}
	if claims.Username != "alice" || claims.Email != "alice@example.com" {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != testTokenParams.Audience {
		t.Errorf("unexpected audience: %v", claims.Audience)
	}
	if claims.ID == "" {
		t.Error("expected jti claim")
	}
	if got := claims.ExpiresAt.Sub(now); got < time.Hour-time.Second || got > time.Hour {
		t.Errorf("expected expiry one hour from now, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params TokenParams
		user   models.User
	}{
		{name: "empty issuer", params: TokenParams{Audience: "a", Duration: time.Hour, SignKey: "k"}, user: testUser()},
		{name: "empty audience", params: TokenParams{Issuer: "i", Duration: time.Hour, SignKey: "k"}, user: testUser()},
		{name: "zero duration", params: TokenParams{Issuer: "i", Audience: "a", SignKey: "k"}, user: testUser()},
		{name: "empty key", params: TokenParams{Issuer: "i", Audience: "a", Duration: time.Hour}, user: testUser()},
		{name: "nil user id", params: testTokenParams, user: models.User{Username: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.params, tt.user, time.Now()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testTokenParams, testUser(), time.Now())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testTokenParams)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != testUser().ID {
		t.Errorf("expected user ID %s, got %s", testUser().ID, parsed.UserID)
	}
	if parsed.Username != "alice" {
		t.Errorf("expected username alice, got %s", parsed.Username)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testTokenParams, testUser(), time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, testTokenParams)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testTokenParams, testUser(), time.Now())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	otherIssuer := testTokenParams
	otherIssuer.Issuer = "other"
	otherAudience := testTokenParams
	otherAudience.Audience = "other"
	otherKey := testTokenParams
	otherKey.SignKey = strings.Repeat("x", 32)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   testUser().ID.String(),
		Issuer:    testTokenParams.Issuer,
		Audience:  jwt.ClaimStrings{testTokenParams.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    testTokenParams.Issuer,
		Audience:  jwt.ClaimStrings{testTokenParams.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testTokenParams.SignKey))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  testUser().ID.String(),
		Issuer:   testTokenParams.Issuer,
		Audience: jwt.ClaimStrings{testTokenParams.Audience},
	}).SignedString([]byte(testTokenParams.SignKey))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		params TokenParams
	}{
		{name: "garbage", token: "not.a.token", params: testTokenParams},
		{name: "wrong issuer", token: valid.SignedString, params: otherIssuer},
		{name: "wrong audience", token: valid.SignedString, params: otherAudience},
		{name: "wrong key", token: valid.SignedString, params: otherKey},
		{name: "alg none", token: noneToken, params: testTokenParams},
		{name: "non-uuid subject", token: badSubject, params: testTokenParams},
		{name: "missing exp", token: noExpiry, params: testTokenParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.params)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				t.Errorf("did not expect ErrTokenExpired, got: %v", err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
