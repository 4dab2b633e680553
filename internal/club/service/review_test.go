package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddReview(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ReviewService{Store: st}

	reader := seedUser(t, st, "reader")
	book := seedBook(t, st, "The Dispossessed")

	t.Run("records rating and content", func(t *testing.T) {
		review, err := svc.AddReview(ctx, reader.ID, book.ID, 5, "an ambiguous utopia")
		require.NoError(t, err)
		require.Equal(t, 5, review.Rating)

		stored, err := st.Reviews().GetReviewByID(ctx, review.ID)
		require.NoError(t, err)
		require.Equal(t, reader.ID, stored.UserID)
		require.Equal(t, "an ambiguous utopia", stored.Content)
	})

	t.Run("rating outside 1-5 is rejected", func(t *testing.T) {
		_, err := svc.AddReview(ctx, reader.ID, book.ID, 0, "meh")
		require.ErrorIs(t, err, ErrInvalidReview)

		_, err = svc.AddReview(ctx, reader.ID, book.ID, 6, "great")
		require.ErrorIs(t, err, ErrInvalidReview)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		_, err := svc.AddReview(ctx, reader.ID, book.ID, 3, "   ")
		require.ErrorIs(t, err, ErrInvalidReview)
	})

	t.Run("unknown book is rejected", func(t *testing.T) {
		_, err := svc.AddReview(ctx, reader.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK", 4, "fine")
		require.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestListBookReviews(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ReviewService{Store: st}

	a := seedUser(t, st, "reader-a")
	b := seedUser(t, st, "reader-b")
	book := seedBook(t, st, "Hyperion")

	_, err := svc.AddReview(ctx, a.ID, book.ID, 4, "the priest's tale alone is worth it")
	require.NoError(t, err)
	second, err := svc.AddReview(ctx, b.ID, book.ID, 5, "read the whole cantos")
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		reviews, err := svc.ListBookReviews(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		require.Equal(t, second.ID, reviews[0].ID)
	})

	t.Run("unknown book is rejected", func(t *testing.T) {
		_, err := svc.ListBookReviews(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		require.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ReviewService{Store: st}

	author := seedUser(t, st, "author")
	other := seedUser(t, st, "other")
	book := seedBook(t, st, "Solaris")

	review, err := svc.AddReview(ctx, author.ID, book.ID, 4, "the ocean wins")
	require.NoError(t, err)

	t.Run("only the author may delete", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteReview(ctx, other.ID, review.ID), ErrForbidden)
	})

	t.Run("author deletes their review", func(t *testing.T) {
		require.NoError(t, svc.DeleteReview(ctx, author.ID, review.ID))

		reviews, err := svc.ListBookReviews(ctx, book.ID)
		require.NoError(t, err)
		require.Empty(t, reviews)
	})

	t.Run("unknown review is rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteReview(ctx, author.ID, review.ID), ErrReviewNotFound)
	})
}
