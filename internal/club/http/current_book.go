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

type CurrentBookHandler struct {
	ClubService *service.ClubService
}

// HandleSet godoc
//
//	@Summary		Current Book Assignment Endpoint
//	@Description	Set the club's current book. Any open reading interval is closed and a new one starts now. Owner and admins only.
//	@Tags			Reading
//	@Accept			json
//	@Produce		json
//	@Param			clubID	path		string							true	"Club ID"
//	@Param			request	body		clubsdk.SetCurrentBookRequest	true	"Current book request"
//	@Success		200		{object}	clubsdk.CurrentBookResponse		"club_id, book_id, title, author, start_date"
//	@Failure		400		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/current-book [put].
func (h *CurrentBookHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.SetCurrentBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}
	if req.BookID == "" {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
			"book_id is required").WriteError(w)
		return
	}

	entry, err := h.ClubService.SetCurrentBook(ctx, actorID, r.PathValue("clubID"), req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrBookNotFound):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"book not found").WriteError(w)
		case errors.Is(err, service.ErrClubArchived):
			clubsdk.NewAPIError(http.StatusConflict, clubsdk.ErrorCodeConflict,
				"the club is archived").WriteError(w)
		case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNotMember):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to set current book", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderReadingEntry(entry))
}

// HandleCurrent godoc
//
//	@Summary		Current Book Lookup Endpoint
//	@Description	Fetch the club's currently open reading interval, if any.
//	@Tags			Reading
//	@Produce		json
//	@Param			clubID	path		string						true	"Club ID"
//	@Success		200		{object}	clubsdk.CurrentBookResponse	"club_id, book_id, title, author, start_date"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/current-book [get].
func (h *CurrentBookHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entry, err := h.ClubService.CurrentBook(ctx, r.PathValue("clubID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrNoCurrentBook):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"the club has no current book").WriteError(w)
		default:
			log.Error("failed to fetch current book", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderReadingEntry(entry))
}

// HandleHistory godoc
//
//	@Summary		Reading History Endpoint
//	@Description	List the club's reading intervals, most recent first. The open interval, if any, comes first and has no end_date.
//	@Tags			Reading
//	@Produce		json
//	@Param			clubID	path		string							true	"Club ID"
//	@Success		200		{object}	clubsdk.ReadingHistoryResponse	"entries"
//	@Failure		401		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clubs/{clubID}/history [get].
func (h *CurrentBookHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	history, err := h.ClubService.ReadingHistory(ctx, r.PathValue("clubID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to fetch reading history", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	entries := make([]clubsdk.CurrentBookResponse, 0, len(history))
	for _, e := range history {
		entries = append(entries, renderReadingEntry(e))
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.ReadingHistoryResponse{Entries: entries})
}
