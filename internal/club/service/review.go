package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrInvalidReview  = errors.New("review rating must be 1-5 and content non-empty")
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewService manages book reviews. A review is personal: any user may
// review any catalogue book, and only the author may delete it.
type ReviewService struct {
	Store store.Store
}

// AddReview records a user's review of a book.
func (s *ReviewService) AddReview(ctx context.Context, userID, bookID string, rating int, content string) (domain.Review, error) {
	log := slogx.FromContext(ctx)

	content = strings.TrimSpace(content)
	if rating < 1 || rating > 5 || content == "" || len(content) > 5000 {
		return domain.Review{}, ErrInvalidReview
	}

	if _, err := s.Store.Books().GetBookByID(ctx, bookID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Review{}, ErrBookNotFound
		}
		return domain.Review{}, err
	}

	review := domain.Review{
		ID:        idx.New().String(),
		UserID:    userID,
		BookID:    bookID,
		Rating:    rating,
		Content:   content,
		CreatedAt: nowUTC(),
	}

	if err := s.Store.Reviews().CreateReview(ctx, review); err != nil {
		log.Error("failed to create review", slog.Any("error", err))
		return domain.Review{}, err
	}

	log.Debug("review added",
		slog.String("review_id", review.ID),
		slog.String("book_id", bookID),
	)
	return review, nil
}

// ListBookReviews returns a book's reviews, newest first.
func (s *ReviewService) ListBookReviews(ctx context.Context, bookID string) ([]domain.Review, error) {
	if _, err := s.Store.Books().GetBookByID(ctx, bookID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return s.Store.Reviews().ListReviewsByBook(ctx, bookID)
}

// DeleteReview removes a review. Only its author may do this.
func (s *ReviewService) DeleteReview(ctx context.Context, actorID, reviewID string) error {
	review, err := s.Store.Reviews().GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != actorID {
		return ErrForbidden
	}
	return s.Store.Reviews().DeleteReview(ctx, reviewID)
}
