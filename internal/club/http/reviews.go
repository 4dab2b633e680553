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

type ReviewsHandler struct {
	ReviewService *service.ReviewService
}

// HandleAdd godoc
//
//	@Summary		Review Creation Endpoint
//	@Description	Review a catalogue book: a 1-5 star rating with free-text content.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			bookID	path		string					true	"Book ID"
//	@Param			request	body		clubsdk.AddReviewRequest	true	"Review details"
//	@Success		201		{object}	clubsdk.ReviewResponse	"review_id, user_id, book_id, rating, content, created_at"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/books/{bookID}/reviews [post].
func (h *ReviewsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req clubsdk.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	review, err := h.ReviewService.AddReview(ctx, actorID, r.PathValue("bookID"), req.Rating, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReview):
			clubsdk.NewAPIError(http.StatusBadRequest, clubsdk.ErrorCodeInvalidRequest,
				"rating must be 1-5 and content non-empty").WriteError(w)
		case errors.Is(err, service.ErrBookNotFound):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"book not found").WriteError(w)
		default:
			log.Error("failed to add review", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, renderReview(review))
}

// HandleList godoc
//
//	@Summary		Review Listing Endpoint
//	@Description	List a book's reviews, newest first.
//	@Tags			Reviews
//	@Produce		json
//	@Param			bookID	path		string						true	"Book ID"
//	@Success		200		{object}	clubsdk.ListReviewsResponse	"reviews"
//	@Failure		401		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/books/{bookID}/reviews [get].
func (h *ReviewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	reviews, err := h.ReviewService.ListBookReviews(ctx, r.PathValue("bookID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			clubsdk.NewAPIError(http.StatusNotFound, clubsdk.ErrorCodeNotFound,
				"book not found").WriteError(w)
		default:
			log.Error("failed to list reviews", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	out := make([]clubsdk.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, renderReview(rv))
	}
	httpx.WriteJSON(w, http.StatusOK, clubsdk.ListReviewsResponse{Reviews: out})
}

// HandleDelete godoc
//
//	@Summary		Review Deletion Endpoint
//	@Description	Delete a review. Only its author may do this.
//	@Tags			Reviews
//	@Param			reviewID	path	string	true	"Review ID"
//	@Success		204			"review deleted"
//	@Failure		401			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/reviews/{reviewID} [delete].
func (h *ReviewsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		clubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.ReviewService.DeleteReview(ctx, actorID, r.PathValue("reviewID")); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			clubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			clubsdk.ErrForbidden.WriteError(w)
		default:
			log.Error("failed to delete review", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
