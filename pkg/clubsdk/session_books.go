package clubsdk

import (
	"context"
	"net/http"
)

// AddBook adds a book to the shared catalogue.
//
// POST /v1/books
func (s *Session) AddBook(ctx context.Context, req AddBookRequest) (*BookResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/books", req)
	if err != nil {
		return nil, err
	}

	var out BookResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBook retrieves a book by id.
//
// GET /v1/books/{bookID}
func (s *Session) GetBook(ctx context.Context, bookID string) (*BookResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/books/"+bookID, nil)
	if err != nil {
		return nil, err
	}

	var out BookResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddReview reviews a book: a 1-5 star rating with free-text content.
//
// POST /v1/books/{bookID}/reviews
func (s *Session) AddReview(ctx context.Context, bookID string, req AddReviewRequest) (*ReviewResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/books/"+bookID+"/reviews", req)
	if err != nil {
		return nil, err
	}

	var out ReviewResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookReviews lists a book's reviews, newest first.
//
// GET /v1/books/{bookID}/reviews
func (s *Session) ListBookReviews(ctx context.Context, bookID string) (*ListReviewsResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/books/"+bookID+"/reviews", nil)
	if err != nil {
		return nil, err
	}

	var out ListReviewsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReview deletes one of the session user's own reviews.
//
// DELETE /v1/reviews/{reviewID}
func (s *Session) DeleteReview(ctx context.Context, reviewID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/reviews/"+reviewID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
