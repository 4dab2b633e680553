package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/service"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/chapterhouse/pageturn/pkg/httpx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

type MeetingsHandler struct {
	MeetingService *service.MeetingService
}

// HandleSchedule godoc
//
//	@Summary		Meeting Scheduling Endpoint
//	@Description	Schedule a club meeting. Any member may schedule; the date is RFC3339.
//	@Tags			Meetings
//	@Accept			json
//	@Produce		json
//	@Param			clubID	path		string							true	"Club ID"
//	@Param			request	body		clubsdk.ScheduleMeetingRequest	true	"Meeting details"
//	@Success		201		{object}	clubsdk.MeetingResponse			"meeting_id, club_id, creator_id, meeting_date, agenda, created_at"
//	@Failure		400		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/meetings [post].
func (h *MeetingsHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.ScheduleMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	date, err := time.Parse(time.RFC3339, req.MeetingDate)
	if err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
			"meeting_date must be an RFC3339 timestamp").WriteError(w)
		return
	}

	meeting, err := h.MeetingService.ScheduleMeeting(ctx, actorID, r.PathValue("clubID"), date, req.Agenda)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMeeting):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"meeting needs a date and an agenda").WriteError(w)
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrClubArchived):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"the club is archived").WriteError(w)
		case errors.Is(err, service.ErrNotMember):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to schedule meeting", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, renderMeeting(meeting))
}

// HandleList godoc
//
//	@Summary		Meeting Listing Endpoint
//	@Description	List a club's meetings, soonest meeting date first.
//	@Tags			Meetings
//	@Produce		json
//	@Param			clubID	path		string							true	"Club ID"
//	@Success		200		{object}	clubsdk.ListMeetingsResponse	"meetings"
//	@Failure		401		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/meetings [get].
func (h *MeetingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	meetings, err := h.MeetingService.ListClubMeetings(ctx, r.PathValue("clubID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to list meetings", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	out := make([]clubsdk.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, renderMeeting(m))
	}
	httpx.WriteJSON(w, http.StatusOK, clubsdk.ListMeetingsResponse{Meetings: out})
}

// HandleCancel godoc
//
//	@Summary		Meeting Cancellation Endpoint
//	@Description	Cancel a meeting. The creator may cancel their own; club owners and admins may cancel any.
//	@Tags			Meetings
//	@Param			meetingID	path	string	true	"Meeting ID"
//	@Success		204			"meeting cancelled"
//	@Failure		401			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/meetings/{meetingID} [delete].
func (h *MeetingsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.MeetingService.CancelMeeting(ctx, actorID, r.PathValue("meetingID")); err != nil {
		switch {
		case errors.Is(err, service.ErrMeetingNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotMember):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to cancel meeting", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
