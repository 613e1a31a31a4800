// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/app"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/internal/utils"
	"github.com/simran-bhella/twitter-clone/models"
)

func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	tweet, err := h.services.TweetService.CreateTweet(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/tweet/"+tweet.ID.String())
	utils.WriteJSON(w, tweet, http.StatusCreated)
}

func (h *Handler) getTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, ok := tweetIDFromRequest(w, r)
	if !ok {
		return
	}

	tweet, err := h.services.TweetService.GetTweet(r.Context(), tweetID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tweet, http.StatusOK)
}

func (h *Handler) listTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.services.TweetService.ListTweets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if tweets == nil {
		tweets = []models.Tweet{}
	}

	utils.WriteJSON(w, tweets, http.StatusOK)
}

func (h *Handler) updateTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	tweetID, ok := tweetIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	tweet, err := h.services.TweetService.UpdateTweet(ctx, userID, tweetID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tweet, http.StatusOK)
}

func (h *Handler) deleteTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	tweetID, ok := tweetIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TweetService.DeleteTweet(ctx, userID, tweetID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgTweetDeleted, http.StatusOK)
}

// tweetIDFromRequest parses the {id} path parameter and answers 400 when it
// is not a UUID.
func tweetIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	tweetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed tweet id")
		utils.WriteMessage(w, app.MsgInvalidTweetID, http.StatusBadRequest)
		return uuid.Nil, false
	}

	return tweetID, true
}
