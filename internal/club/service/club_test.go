package service

import (
	"context"
	"testing"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/stretchr/testify/require"
)

func TestSetCurrentBook(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClubService{Store: st}

	owner := seedUser(t, st, "owner")
	admin := seedUser(t, st, "admin")
	member := seedUser(t, st, "member")

	club := seedClub(t, st, owner)
	seedMember(t, st, club, admin, domain.RoleAdmin)
	seedMember(t, st, club, member, domain.RoleMember)

	dune := seedBook(t, st, "Dune")
	hyperion := seedBook(t, st, "Hyperion")

	t.Run("first book opens an interval", func(t *testing.T) {
		entry, err := svc.SetCurrentBook(ctx, owner.ID, club.ID, dune.ID)
		require.NoError(t, err)
		require.Equal(t, dune.ID, entry.BookID)
		require.Nil(t, entry.EndDate)

		current, err := svc.CurrentBook(ctx, club.ID)
		require.NoError(t, err)
		require.Equal(t, "Dune", current.Title)
	})

	t.Run("next book closes the previous interval", func(t *testing.T) {
		_, err := svc.SetCurrentBook(ctx, admin.ID, club.ID, hyperion.ID)
		require.NoError(t, err)

		current, err := svc.CurrentBook(ctx, club.ID)
		require.NoError(t, err)
		require.Equal(t, hyperion.ID, current.BookID)

		history, err := svc.ReadingHistory(ctx, club.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)

		// Open interval first, then the closed one with an end date.
		require.Nil(t, history[0].EndDate)
		require.Equal(t, hyperion.ID, history[0].BookID)
		require.NotNil(t, history[1].EndDate)
		require.Equal(t, dune.ID, history[1].BookID)
		require.False(t, history[1].EndDate.Before(history[1].StartDate))
	})

	t.Run("plain members cannot set the book", func(t *testing.T) {
		_, err := svc.SetCurrentBook(ctx, member.ID, club.ID, dune.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown book is rejected", func(t *testing.T) {
		_, err := svc.SetCurrentBook(ctx, owner.ID, club.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		require.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("unknown club is rejected", func(t *testing.T) {
		_, err := svc.SetCurrentBook(ctx, owner.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK", dune.ID)
		require.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestCurrentBookEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClubService{Store: st}

	owner := seedUser(t, st, "owner")
	club := seedClub(t, st, owner)

	_, err := svc.CurrentBook(ctx, club.ID)
	require.ErrorIs(t, err, ErrNoCurrentBook)

	history, err := svc.ReadingHistory(ctx, club.ID)
	require.NoError(t, err)
	require.Empty(t, history)

	_, err = svc.CurrentBook(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
	require.ErrorIs(t, err, ErrClubNotFound)
}

func TestBookCatalogue(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BookService{Store: st}

	t.Run("add and fetch", func(t *testing.T) {
		book, err := svc.AddBook(ctx, "  The Dispossessed ", "Ursula K. Le Guin", "978-0061054884")
		require.NoError(t, err)
		require.Equal(t, "The Dispossessed", book.Title)

		got, err := svc.GetBook(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, book.ID, got.ID)
		require.Equal(t, book.Title, got.Title)
		require.Equal(t, book.Author, got.Author)
		require.Equal(t, book.ISBN, got.ISBN)
	})

	t.Run("title and author are required", func(t *testing.T) {
		_, err := svc.AddBook(ctx, "", "someone", "")
		require.ErrorIs(t, err, ErrInvalidBook)

		_, err = svc.AddBook(ctx, "something", "  ", "")
		require.ErrorIs(t, err, ErrInvalidBook)
	})

	t.Run("unknown book id", func(t *testing.T) {
		_, err := svc.GetBook(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		require.ErrorIs(t, err, ErrBookNotFound)
	})
}
