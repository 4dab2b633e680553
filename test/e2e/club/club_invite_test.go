package club_test

import (
	"net/http"
	"testing"

	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteFlow exercises the full invite lifecycle over the wire:
// minting, listing, acceptance, and the single-shot guarantees.
func TestInviteFlow(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, owner := registerAndLogin(t, client, "sender")
	guestID, guest := registerAndLogin(t, client, "guest")
	_, stranger := registerAndLogin(t, client, "stranger")

	club, err := owner.CreateClub(ctx, clubsdk.CreateClubRequest{Name: "Invite Test Club"})
	require.NoError(t, err)

	invite, err := owner.SendInvite(ctx, guestID, club.ClubID)
	require.NoError(t, err)
	require.NotEmpty(t, invite.Token, "the token is returned at mint time")
	require.Equal(t, "pending", invite.Status)

	t.Run("duplicate pending invite is rejected", func(t *testing.T) {
		_, err := owner.SendInvite(ctx, guestID, club.ClubID)
		assertAPIError(t, err, http.StatusConflict, "duplicate invite")
	})

	t.Run("listings never include the token", func(t *testing.T) {
		sent, err := owner.ListSentInvites(ctx)
		require.NoError(t, err)
		require.Len(t, sent.Invites, 1)

		received, err := guest.ListReceivedInvites(ctx, "")
		require.NoError(t, err)
		require.Len(t, received.Invites, 1)
		require.Equal(t, "pending", received.Invites[0].Status)

		pending, err := guest.ListReceivedInvites(ctx, "pending")
		require.NoError(t, err)
		require.Len(t, pending.Invites, 1)

		accepted, err := guest.ListReceivedInvites(ctx, "accepted")
		require.NoError(t, err)
		require.Empty(t, accepted.Invites)
	})

	t.Run("only the recipient may accept", func(t *testing.T) {
		_, err := stranger.AcceptInvite(ctx, invite.Token)
		assertAPIError(t, err, http.StatusForbidden, "stranger accepting")
	})

	t.Run("accept joins the club as a member", func(t *testing.T) {
		accepted, err := guest.AcceptInvite(ctx, invite.Token)
		require.NoError(t, err)
		require.Equal(t, club.ClubID, accepted.ClubID)
		require.Equal(t, "member", accepted.Role)

		roster, err := guest.ListMembers(ctx, club.ClubID)
		require.NoError(t, err)
		require.Len(t, roster.Members, 2)
	})

	t.Run("accept is single-shot", func(t *testing.T) {
		_, err := guest.AcceptInvite(ctx, invite.Token)
		assertAPIError(t, err, http.StatusConflict, "second accept")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := guest.AcceptInvite(ctx, "not-a-token")
		assertAPIError(t, err, http.StatusUnauthorized, "garbage token")
	})

	t.Run("existing member cannot be re-invited", func(t *testing.T) {
		_, err := owner.SendInvite(ctx, guestID, club.ClubID)
		assertAPIError(t, err, http.StatusConflict, "inviting a member")
	})
}

// TestInviteDecline verifies declining is terminal for the token but does
// not block a fresh invite.
func TestInviteDecline(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, owner := registerAndLogin(t, client, "host")
	guestID, guest := registerAndLogin(t, client, "invitee")

	club, err := owner.CreateClub(ctx, clubsdk.CreateClubRequest{Name: "Decline Test Club"})
	require.NoError(t, err)

	invite, err := owner.SendInvite(ctx, guestID, club.ClubID)
	require.NoError(t, err)

	require.NoError(t, guest.DeclineInvite(ctx, invite.Token))

	t.Run("declined token cannot be accepted", func(t *testing.T) {
		_, err := guest.AcceptInvite(ctx, invite.Token)
		assertAPIError(t, err, http.StatusConflict, "accept after decline")
	})

	t.Run("a fresh invite may follow", func(t *testing.T) {
		second, err := owner.SendInvite(ctx, guestID, club.ClubID)
		require.NoError(t, err)

		_, err = guest.AcceptInvite(ctx, second.Token)
		require.NoError(t, err)
	})
}
