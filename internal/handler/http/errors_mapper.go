// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/simran-bhella/twitter-clone/internal/app"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/service"
	"github.com/simran-bhella/twitter-clone/internal/store"
	"github.com/simran-bhella/twitter-clone/internal/utils"
	"github.com/simran-bhella/twitter-clone/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first target matched by
// [errors.Is] decides the response.
var errorResponses = []errorResponse{
	{validators.ErrValidation, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNothingToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrForbidden, http.StatusForbidden, app.MsgForbidden},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrTweetNotFound, http.StatusNotFound, app.MsgTweetNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameTaken},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailTaken},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}

		if resp.target == validators.ErrValidation {
			return resp.status, validationMessage(err)
		}
		return resp.status, resp.message
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// validationMessage strips the wrapping context and keeps the field
// messages, e.g. "email must be a valid email address".
func validationMessage(err error) string {
	_, details, found := strings.Cut(err.Error(), validators.ErrValidation.Error()+": ")
	if !found || details == "" {
		return validators.ErrValidation.Error()
	}
	return details
}

// writeError logs err and writes the matching {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
