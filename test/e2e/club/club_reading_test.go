package club_test

import (
	"net/http"
	"testing"

	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

// TestReadingHistory verifies the current-book interval semantics over the
// wire: one open interval at a time, history most recent first.
func TestReadingHistory(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	memberID, member := registerAndLogin(t, client, "reader")
	_, owner := registerAndLogin(t, client, "curator")

	club, err := owner.CreateClub(ctx, clubsdk.CreateClubRequest{Name: "Reading Test Club"})
	require.NoError(t, err)

	invite, err := owner.SendInvite(ctx, memberID, club.ClubID)
	require.NoError(t, err)
	_, err = member.AcceptInvite(ctx, invite.Token)
	require.NoError(t, err)

	dune, err := owner.AddBook(ctx, clubsdk.AddBookRequest{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "978-0441172719",
	})
	require.NoError(t, err)

	hyperion, err := owner.AddBook(ctx, clubsdk.AddBookRequest{
		Title:  "Hyperion",
		Author: "Dan Simmons",
	})
	require.NoError(t, err)

	t.Run("no current book initially", func(t *testing.T) {
		_, err := member.CurrentBook(ctx, club.ClubID)
		assertAPIError(t, err, http.StatusNotFound, "empty current book")
	})

	t.Run("owner sets the first book", func(t *testing.T) {
		entry, err := owner.SetCurrentBook(ctx, club.ClubID, dune.BookID)
		require.NoError(t, err)
		require.Equal(t, "Dune", entry.Title)
		require.Empty(t, entry.EndDate, "open interval has no end date")
	})

	t.Run("plain members cannot set the book", func(t *testing.T) {
		_, err := member.SetCurrentBook(ctx, club.ClubID, hyperion.BookID)
		assertAPIError(t, err, http.StatusForbidden, "member setting book")
	})

	t.Run("next book closes the previous interval", func(t *testing.T) {
		_, err := owner.SetCurrentBook(ctx, club.ClubID, hyperion.BookID)
		require.NoError(t, err)

		current, err := member.CurrentBook(ctx, club.ClubID)
		require.NoError(t, err)
		require.Equal(t, hyperion.BookID, current.BookID)

		history, err := member.ReadingHistory(ctx, club.ClubID)
		require.NoError(t, err)
		require.Len(t, history.Entries, 2)
		require.Empty(t, history.Entries[0].EndDate)
		require.Equal(t, hyperion.BookID, history.Entries[0].BookID)
		require.NotEmpty(t, history.Entries[1].EndDate)
		require.Equal(t, dune.BookID, history.Entries[1].BookID)
	})

	t.Run("unknown book is rejected", func(t *testing.T) {
		_, err := owner.SetCurrentBook(ctx, club.ClubID, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		assertAPIError(t, err, http.StatusNotFound, "unknown book")
	})
}
