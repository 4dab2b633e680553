package http

import (
	"errors"
	"net/http"

	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type FollowsHandler struct {
	SocialService *service.SocialService
}

// HandleFollow godoc
//
//	@Summary		Follow Endpoint
//	@Description	Make the authenticated user follow another user. Following is one-directional; no reciprocal edge is created.
//	@Tags			Follows
//	@Produce		json
//	@Param			userID	path	string	true	"User ID to follow"
//	@Success		204		"follow edge created"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/follows/{userID} [put].
func (h *FollowsHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.SocialService.Follow(ctx, actorID, r.PathValue("userID")); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"you cannot follow yourself").WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrAlreadyFollowing):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"already following this user").WriteError(w)
		default:
			log.Error("failed to create follow", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnfollow godoc
//
//	@Summary		Unfollow Endpoint
//	@Description	Remove the authenticated user's follow edge to another user. The reverse edge, if any, is untouched.
//	@Tags			Follows
//	@Produce		json
//	@Param			userID	path	string	true	"User ID to unfollow"
//	@Success		204		"follow edge removed"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/follows/{userID} [delete].
func (h *FollowsHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.SocialService.Unfollow(ctx, actorID, r.PathValue("userID")); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFollowing):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"not following this user").WriteError(w)
		default:
			log.Error("failed to remove follow", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
