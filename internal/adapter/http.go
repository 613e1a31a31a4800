// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/config"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/utils"
	"github.com/simran-bhella/twitter-clone/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter]
// for the server at cfg.HTTPAddress. An address without a scheme is treated
// as plain HTTP.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.NormalizeBaseURL(cfg.HTTPAddress)
	if baseURL == "" {
		return nil, errors.New("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for the Authorization header of authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/auth/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Register implements [ServerAdapter]. It POSTs req to /api/auth/signup.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/signup")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and stores the token from the response body, falling back
// to the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResp.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		loginResp.Token = token
	}

	h.SetToken(loginResp.Token)
	h.logger.Debug().Str("expires_in", loginResp.ExpiresIn).Msg("token stored")
	return loginResp, nil
}

func (h *httpServerAdapter) Hello(ctx context.Context) (string, error) {
	var msg models.MessageResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}
	resp, err := req.SetResult(&msg).Get("/api/test/hello")
	if err != nil {
		return "", fmt.Errorf("hello request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return msg.Message, nil
}

func (h *httpServerAdapter) EditAccount(ctx context.Context, update models.UpdateUserRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/auth/edit")
	if err != nil {
		return fmt.Errorf("edit account request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteAccount implements [ServerAdapter]. On success the stored token is
// cleared since it no longer refers to an account.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete("/api/auth/delete")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateTweet(ctx context.Context, content string) (models.Tweet, error) {
	var tweet models.Tweet

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Tweet{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.TweetRequest{Content: content}).
		SetResult(&tweet).
		Post("/api/tweet")
	if err != nil {
		return models.Tweet{}, fmt.Errorf("create tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}
	return tweet, nil
}

func (h *httpServerAdapter) GetTweet(ctx context.Context, id uuid.UUID) (models.Tweet, error) {
	var tweet models.Tweet

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		SetResult(&tweet).
		Get("/api/tweet/{id}")
	if err != nil {
		return models.Tweet{}, fmt.Errorf("get tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}
	return tweet, nil
}

func (h *httpServerAdapter) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	tweets := make([]models.Tweet, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tweets).
		Get("/api/tweet")
	if err != nil {
		return nil, fmt.Errorf("list tweets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (h *httpServerAdapter) UpdateTweet(ctx context.Context, id uuid.UUID, content string) (models.Tweet, error) {
	var tweet models.Tweet

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Tweet{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id.String()).
		SetBody(models.TweetRequest{Content: content}).
		SetResult(&tweet).
		Put("/api/tweet/{id}")
	if err != nil {
		return models.Tweet{}, fmt.Errorf("update tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}
	return tweet, nil
}

func (h *httpServerAdapter) DeleteTweet(ctx context.Context, id uuid.UUID) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParam("id", id.String()).
		Delete("/api/tweet/{id}")
	if err != nil {
		return fmt.Errorf("delete tweet request: %w", err)
	}
	return mapHTTPError(resp)
}

// authedRequest returns a request carrying the bearer token, or [ErrNoToken].
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
