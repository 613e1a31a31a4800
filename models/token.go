// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by every issued bearer token.
// The subject ("sub") holds the user ID.
type TokenClaims struct {
	// Username is the "unique_name" claim.
	Username string `json:"unique_name,omitempty"`

	// Email is the "email" claim.
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// Token is a signed bearer token together with the identity it asserts.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID

	// Username and Email mirror the "unique_name" and "email" claims.
	Username string
	Email    string

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
