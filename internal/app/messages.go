// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// twitter-clone server handlers and the REST client.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	MsgPong = "pong"

	MsgUserCreated    = "User created successfully."
	MsgAccountUpdated = "Account updated successfully."
	MsgAccountDeleted = "Account deleted successfully."
	MsgTweetDeleted   = "Tweet deleted."

	// MsgHelloFormat takes the username from the token claims.
	MsgHelloFormat = "Hello, %s! This is a protected endpoint."
	// MsgUnknownUsername stands in for a token without a username claim.
	MsgUnknownUsername = "unknown"

	MsgUsernameTaken      = "Username already taken."
	MsgEmailTaken         = "Email already registered."
	MsgInvalidCredentials = "Invalid credentials."
	MsgUserNotFound       = "User not found."
	MsgTweetNotFound      = "Tweet not found."
	MsgForbidden          = "You can only modify your own tweets."
	MsgNothingToUpdate    = "Nothing to update."

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed."

	// MsgInvalidTweetID is returned for a malformed {id} path parameter.
	MsgInvalidTweetID = "Invalid tweet id."

	MsgInvalidDataProvided = "Invalid data provided."

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "Token is expired."

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid."

	// MsgRequestTimeout is returned when a request outlives the server's
	// per-request deadline.
	MsgRequestTimeout = "Request timed out."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error."
)
