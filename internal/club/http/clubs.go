package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type ClubsHandler struct {
	MembershipService *service.MembershipService
}

// HandleCreate godoc
//
//	@Summary		Club Creation Endpoint
//	@Description	Create a new book club. The authenticated user becomes its owner and first member.
//	@Tags			Clubs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.CreateClubRequest	true	"Club creation request"
//	@Success		201		{object}	clubsdk.ClubResponse		"club_id, name, synopsis, owner_id, created_at"
//	@Failure		400		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs [post].
func (h *ClubsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.CreateClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	club, err := h.MembershipService.CreateClub(ctx, actorID, req.Name, req.Synopsis)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClubName):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"club name must be 1-100 characters").WriteError(w)
		default:
			log.Error("failed to create club", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, renderClub(club))
}

// HandleMine godoc
//
//	@Summary		My Clubs Endpoint
//	@Description	List the clubs the authenticated user belongs to, with their role in each.
//	@Tags			Clubs
//	@Produce		json
//	@Success		200	{object}	clubsdk.ListClubsResponse	"clubs"
//	@Failure		401	{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me/clubs [get].
func (h *ClubsHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	clubs, err := h.MembershipService.ListClubs(ctx, actorID)
	if err != nil {
		log.Error("failed to list clubs", "err", err)
		clubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.ListClubsResponse{Clubs: renderUserClubs(clubs)})
}

// HandleGet godoc
//
//	@Summary		Club Lookup Endpoint
//	@Description	Fetch a single book club by id.
//	@Tags			Clubs
//	@Produce		json
//	@Param			clubID	path		string					true	"Club ID"
//	@Success		200		{object}	clubsdk.ClubResponse	"club_id, name, synopsis, owner_id, created_at"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID} [get].
func (h *ClubsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	club, err := h.MembershipService.GetClub(ctx, r.PathValue("clubID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to fetch club", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderClub(club))
}

// HandleDelete godoc
//
//	@Summary		Club Deletion Endpoint
//	@Description	Delete a book club along with its memberships, invites and reading history. Owner-only.
//	@Tags			Clubs
//	@Produce		json
//	@Param			clubID	path	string	true	"Club ID"
//	@Success		204		"club deleted"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID} [delete].
func (h *ClubsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.MembershipService.DeleteClub(ctx, actorID, r.PathValue("clubID")); err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotMember):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to delete club", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleArchive godoc
//
//	@Summary		Club Archival Endpoint
//	@Description	Archive a club. Its history stays readable but new invites and current-book changes are refused. Owner-only.
//	@Tags			Clubs
//	@Produce		json
//	@Param			clubID	path	string	true	"Club ID"
//	@Success		204		"club archived"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/archive [post].
func (h *ClubsHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.MembershipService.ArchiveClub(ctx, actorID, r.PathValue("clubID")); err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrClubArchived):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"the club is already archived").WriteError(w)
		case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotMember):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to archive club", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleTransfer godoc
//
//	@Summary		Ownership Transfer Endpoint
//	@Description	Hand club ownership to another existing member. The previous owner becomes an admin. Owner-only.
//	@Tags			Clubs
//	@Accept			json
//	@Produce		json
//	@Param			clubID	path	string								true	"Club ID"
//	@Param			request	body	clubsdk.TransferOwnershipRequest	true	"Transfer request"
//	@Success		204		"ownership transferred"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/transfer [post].
func (h *ClubsHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.TransferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}
	if req.NewOwnerID == "" {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
			"new_owner_id is required").WriteError(w)
		return
	}

	if err := h.MembershipService.TransferOwnership(ctx, actorID, r.PathValue("clubID"), req.NewOwnerID); err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrNotMember):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"the new owner must already be a club member").WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to transfer ownership", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
