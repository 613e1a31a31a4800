// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/app"
	"github.com/simran-bhella/twitter-clone/internal/service"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/validators"
	"github.com/simran-bhella/twitter-clone/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

// ─────────────────────────────────────────────
// ping
// ─────────────────────────────────────────────

func TestPing(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/ping", nil))
	rr := httptest.NewRecorder()
	h.ping(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, app.MsgPong, decodeMessage(t, rr))
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			wantStatus:  http.StatusOK,
			wantMessage: app.MsgUserCreated,
		},
		{
			name:        "invalid JSON",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "empty body",
			body:        ``,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "validation failure",
			body:        `{"username":"alice","email":"nope","password":"secret1"}`,
			registerErr: fmt.Errorf("%w: %s", validators.ErrValidation, "email must be a valid email address"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "email must be a valid email address",
		},
		{
			name:        "username taken",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			registerErr: store.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgUsernameTaken,
		},
		{
			name:        "email taken, wrapped",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			registerErr: fmt.Errorf("register: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgEmailTaken,
		},
		{
			name:        "unexpected error",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			registerErr: errors.New("db is down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.RegisterRequest
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
					got = req
					if tt.registerErr != nil {
						return models.User{}, tt.registerErr
					}
					return models.User{ID: testUserID, Username: req.Username, Email: req.Email}, nil
				},
			}
			h := newTestHandler(auth, nil)

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/signup", jsonBody(tt.body)))
			rr := httptest.NewRecorder()
			h.register(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", got.Username)
				assert.Equal(t, "secret1", got.Password)
			}
		})
	}
}

func TestRegister_DoesNotIssueToken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{ID: testUserID}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			t.Fatal("signup must not issue a token")
			return models.Token{}, nil
		},
	}
	h := newTestHandler(auth, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		jsonBody(`{"username":"alice","email":"alice@example.com","password":"secret1"}`)))
	rr := httptest.NewRecorder()
	h.register(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	expiresAt := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "secret1", req.Password)
			return models.User{ID: testUserID, Username: "alice"}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, testUserID, user.ID)
			return models.Token{SignedString: "signed.jwt.token", UserID: user.ID, ExpiresAt: expiresAt}, nil
		},
	}
	h := newTestHandler(auth, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(`{"username":"alice","password":"secret1"}`)))
	rr := httptest.NewRecorder()
	h.login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "2026-03-01T13:00:00Z", resp.ExpiresIn)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		loginErr    error
		tokenErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `not json`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "wrong password",
			body:        `{"username":"alice","password":"nope"}`,
			loginErr:    service.ErrWrongPassword,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidCredentials,
		},
		{
			name:        "wrapped wrong password",
			body:        `{"username":"ghost","password":"nope"}`,
			loginErr:    fmt.Errorf("login: %w", service.ErrWrongPassword),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidCredentials,
		},
		{
			name:        "missing fields",
			body:        `{}`,
			loginErr:    fmt.Errorf("%w: %s", validators.ErrValidation, "username is required; password is required"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username is required; password is required",
		},
		{
			name:        "token creation fails",
			body:        `{"username":"alice","password":"secret1"}`,
			tokenErr:    service.ErrTokenCreationFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
					return models.User{ID: testUserID}, tt.loginErr
				},
				createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
					return models.Token{}, tt.tokenErr
				},
			}
			h := newTestHandler(auth, nil)

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(tt.body)))
			rr := httptest.NewRecorder()
			h.login(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// editAccount / deleteAccount
// ─────────────────────────────────────────────

func TestEditAccount_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		noUser      bool
		updateErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"email":"new@example.com"}`,
			wantStatus:  http.StatusOK,
			wantMessage: app.MsgAccountUpdated,
		},
		{
			name:        "no user in context",
			body:        `{"email":"new@example.com"}`,
			noUser:      true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:        "invalid JSON",
			body:        `{`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name:        "nothing to update",
			body:        `{}`,
			updateErr:   service.ErrNothingToUpdate,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgNothingToUpdate,
		},
		{
			name:        "username taken",
			body:        `{"username":"bob"}`,
			updateErr:   store.ErrUsernameAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgUsernameTaken,
		},
		{
			name:        "account vanished",
			body:        `{"username":"bob"}`,
			updateErr:   store.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				updateUserFn: func(_ context.Context, userID uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
					assert.Equal(t, testUserID, userID)
					return models.User{ID: userID, Email: req.Email}, tt.updateErr
				},
			}
			h := newTestHandler(auth, nil)

			req := injectNopLogger(httptest.NewRequest(http.MethodPut, "/api/auth/edit", jsonBody(tt.body)))
			if !tt.noUser {
				req = withUser(req, testUserID, "alice")
			}
			rr := httptest.NewRecorder()
			h.editAccount(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
		})
	}
}

func TestDeleteAccount_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		noUser      bool
		deleteErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			wantStatus:  http.StatusOK,
			wantMessage: app.MsgAccountDeleted,
		},
		{
			name:        "no user in context",
			noUser:      true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:        "already deleted",
			deleteErr:   store.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgUserNotFound,
		},
		{
			name:        "transaction failure",
			deleteErr:   fmt.Errorf("%w: boom", store.ErrCommitingTransaction),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &mockAuthService{
				deleteUserFn: func(_ context.Context, userID uuid.UUID) error {
					called = true
					assert.Equal(t, testUserID, userID)
					return tt.deleteErr
				},
			}
			h := newTestHandler(auth, nil)

			req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/api/auth/delete", nil))
			if !tt.noUser {
				req = withUser(req, testUserID, "alice")
			}
			rr := httptest.NewRecorder()
			h.deleteAccount(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.Equal(t, !tt.noUser, called)
		})
	}
}

// ─────────────────────────────────────────────
// hello
// ─────────────────────────────────────────────

func TestHello(t *testing.T) {
	h := newTestHandler(nil, nil)

	t.Run("greets username from token", func(t *testing.T) {
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/test/hello", nil))
		req = withUser(req, testUserID, "alice")
		rr := httptest.NewRecorder()
		h.hello(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Hello, alice! This is a protected endpoint.", decodeMessage(t, rr))
	})

	t.Run("falls back when username is absent", func(t *testing.T) {
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/test/hello", nil))
		rr := httptest.NewRecorder()
		h.hello(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Hello, unknown! This is a protected endpoint.", decodeMessage(t, rr))
	})
}
