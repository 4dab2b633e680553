package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		Club Roster Endpoint
//	@Description	List a club's members with their roles. The owner is listed first, then admins, then members, each group oldest join first.
//	@Tags			Members
//	@Produce		json
//	@Param			clubID	path		string						true	"Club ID"
//	@Success		200		{object}	clubsdk.ListMembersResponse	"members"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	members, err := h.MembershipService.ListMembers(ctx, r.PathValue("clubID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to list members", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.ListMembersResponse{
		Members: renderMembers(members),
	})
}

// HandleChangeRole godoc
//
//	@Summary		Role Change Endpoint
//	@Description	Change a member's role between "admin" and "member". Owners and admins may promote; only the owner may demote another admin. The owner role is never assignable here.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			clubID	path	string					true	"Club ID"
//	@Param			userID	path	string					true	"Target member's user ID"
//	@Param			request	body	clubsdk.ChangeRoleRequest	true	"Role change request"
//	@Success		204		"role changed"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/members/{userID} [patch].
func (h *MembersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	err := h.MembershipService.ChangeRole(ctx, actorID,
		r.PathValue("clubID"), r.PathValue("userID"), domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				`role must be "admin" or "member"`).WriteError(w)
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrNotMember):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"no such membership").WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to change role", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove godoc
//
//	@Summary		Member Removal Endpoint
//	@Description	Remove a member from a club. Members may remove themselves (leave); admins may remove plain members; the owner may remove anyone but themselves. Owners must transfer ownership before leaving.
//	@Tags			Members
//	@Produce		json
//	@Param			clubID	path	string	true	"Club ID"
//	@Param			userID	path	string	true	"Target member's user ID"
//	@Success		204		"member removed"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/members/{userID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	err := h.MembershipService.RemoveMember(ctx, actorID, r.PathValue("clubID"), r.PathValue("userID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrNotMember):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"no such membership").WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to remove member", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
