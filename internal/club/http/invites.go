package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleSend godoc
//
//	@Summary		Invite Creation Endpoint
//	@Description	Invite another user to a club the sender belongs to. The signed token in the response is shown exactly once; only its fingerprint is stored.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.SendInviteRequest	true	"Invite request"
//	@Success		201		{object}	clubsdk.InviteResponse		"invite_id, token, status, expires_at"
//	@Failure		400		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InvitesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.SendInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}
	if req.RecipientID == "" || req.ClubID == "" {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
			"recipient_id and club_id are required").WriteError(w)
		return
	}

	invite, token, err := h.InviteService.Send(ctx, actorID, req.RecipientID, req.ClubID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfInvite):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"you cannot invite yourself").WriteError(w)
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrClubArchived):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"the club is archived").WriteError(w)
		case errors.Is(err, service.ErrRecipientNotFound):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"recipient not found or inactive").WriteError(w)
		case errors.Is(err, service.ErrNotMember):
			clubsdk.ErrForbidden.WriteError(w)
		case errors.Is(err, service.ErrAlreadyMember):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"recipient is already a club member").WriteError(w)
		case errors.Is(err, service.ErrDuplicatePending):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"a pending invite for this recipient already exists").WriteError(w)
		default:
			log.Error("failed to send invite", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	// The raw token is only available here, at mint time.
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, clubsdk.InviteResponse{
		InviteID:    invite.ID,
		SenderID:    invite.SenderID,
		RecipientID: invite.RecipientID,
		ClubID:      invite.ClubID,
		Status:      string(invite.Status),
		Token:       token,
		ExpiresAt:   renderTime(invite.ExpiresAt),
		CreatedAt:   renderTime(invite.CreatedAt),
	})
}

// HandleAccept godoc
//
//	@Summary		Invite Acceptance Endpoint
//	@Description	Accept a pending invite by presenting its signed token. Only the addressed recipient may accept; a processed or expired invite cannot be accepted again.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.RedeemInviteRequest		true	"Invite token"
//	@Success		200		{object}	clubsdk.AcceptInviteResponse	"club_id, user_id, role"
//	@Failure		400		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	token, ok := decodeInviteToken(w, r)
	if !ok {
		return
	}

	membership, err := h.InviteService.Accept(ctx, actorID, token)
	if err != nil {
		writeInviteError(w, log, err, "failed to accept invite")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.AcceptInviteResponse{
		ClubID: membership.ClubID,
		UserID: membership.UserID,
		Role:   string(membership.Role),
	})
}

// HandleDecline godoc
//
//	@Summary		Invite Decline Endpoint
//	@Description	Decline a pending invite by presenting its signed token. Declining is terminal for that invite but a fresh one may be sent afterwards.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body	clubsdk.RedeemInviteRequest	true	"Invite token"
//	@Success		204		"invite declined"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/decline [post].
func (h *InvitesHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	token, ok := decodeInviteToken(w, r)
	if !ok {
		return
	}

	if err := h.InviteService.Decline(ctx, actorID, token); err != nil {
		writeInviteError(w, log, err, "failed to decline invite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListSent godoc
//
//	@Summary		Sent Invites Listing Endpoint
//	@Description	List invites the authenticated user has sent, most recent first. Tokens are never included in listings.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	clubsdk.ListInvitesResponse	"invites"
//	@Failure		401	{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/sent [get].
func (h *InvitesHandler) HandleListSent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(ctx context.Context, userID string) ([]domain.Invite, error) {
		return h.InviteService.ListSent(ctx, userID)
	})
}

// HandleListReceived godoc
//
//	@Summary		Received Invites Listing Endpoint
//	@Description	List invites addressed to the authenticated user, most recent first, optionally narrowed to one status. Tokens are never included in listings.
//	@Tags			Invites
//	@Produce		json
//	@Param			status	query		string						false	"Filter by status: pending, accepted or declined"
//	@Success		200		{object}	clubsdk.ListInvitesResponse	"invites"
//	@Failure		400		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/received [get].
func (h *InvitesHandler) HandleListReceived(w http.ResponseWriter, r *http.Request) {
	status := domain.InviteStatus(r.URL.Query().Get("status"))
	h.list(w, r, func(ctx context.Context, userID string) ([]domain.Invite, error) {
		return h.InviteService.ListReceived(ctx, userID, status)
	})
}

func (h *InvitesHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context, userID string) ([]domain.Invite, error),
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	invites, err := fetch(ctx, actorID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusFilter) {
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				`status must be "pending", "accepted" or "declined"`).WriteError(w)
			return
		}
		log.Error("failed to list invites", "err", err)
		clubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.ListInvitesResponse{
		Invites: renderInvites(invites),
	})
}

func decodeInviteToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req clubsdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return "", false
	}
	if req.Token == "" {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
			"token is required").WriteError(w)
		return "", false
	}
	return req.Token, true
}

// Accept and decline share one error surface: both resolve the token the
// same way before touching invite state.
func writeInviteError(w http.ResponseWriter, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidToken):
		clubsdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrExpiredToken):
		clubsdk.ErrExpiredToken.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		clubsdk.NewAPIError(http.StatusForbidden, clubsdk.ErrorCodeForbidden,
			"this invite is addressed to another user").WriteError(w)
	case errors.Is(err, service.ErrInviteNotFound):
		clubsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrAlreadyProcessed):
		clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
			"this invite has already been accepted or declined").WriteError(w)
	default:
		log.Error(msg, "err", err)
		clubsdk.ErrServerError.WriteError(w)
	}
}
