package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type UsersHandler struct {
	UserService   *service.UserService
	SocialService *service.SocialService
}

// HandleDeactivate godoc
//
//	@Summary		Account Deactivation Endpoint
//	@Description	Deactivate the authenticated user's own account. The row is retained for audit but the account can no longer log in or receive invites.
//	@Tags			Users
//	@Produce		json
//	@Success		204	"account deactivated"
//	@Failure		401	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me [delete].
func (h *UsersHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.UserService.Deactivate(ctx, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to deactivate user", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGet godoc
//
//	@Summary		User Profile Endpoint
//	@Description	Fetch a user's public profile. Deactivated accounts are not found.
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		string							true	"User ID"
//	@Success		200		{object}	clubsdk.UserProfileResponse		"user_id, username, created_at"
//	@Failure		401		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{userID} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.UserService.GetUser(ctx, r.PathValue("userID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to fetch user", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}
	if !user.Active {
		clubsdk.ErrNotFound.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.UserProfileResponse{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: renderTime(user.CreatedAt),
	})
}

// HandleFollowers godoc
//
//	@Summary		Followers Listing Endpoint
//	@Description	List the users following the given user, oldest follow first. Paged via limit (default 50, max 200) and offset query parameters.
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	clubsdk.FollowListResponse	"users, limit, offset"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{userID}/followers [get].
func (h *UsersHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	h.listFollows(w, r, h.SocialService.Followers)
}

// HandleFollowing godoc
//
//	@Summary		Following Listing Endpoint
//	@Description	List the users the given user follows, oldest follow first. Paged via limit (default 50, max 200) and offset query parameters.
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	clubsdk.FollowListResponse	"users, limit, offset"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{userID}/following [get].
func (h *UsersHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	h.listFollows(w, r, h.SocialService.Following)
}

func (h *UsersHandler) listFollows(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID string, limit, offset int) ([]domain.UserRef, error),
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	limit, offset := service.ClampPage(parsePage(r))

	users, err := list(ctx, r.PathValue("userID"), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to list follows", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.FollowListResponse{
		Users:  renderUsers(users),
		Limit:  limit,
		Offset: offset,
	})
}

// parsePage reads limit/offset query parameters, falling back to zero on
// anything unparseable. The service layer clamps to its own bounds.
func parsePage(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
