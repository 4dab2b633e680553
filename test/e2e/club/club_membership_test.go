package club_test

import (
	"net/http"
	"testing"

	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

// TestClubLifecycle walks a club from creation through role changes,
// ownership transfer and deletion, verifying the roster at each step.
func TestClubLifecycle(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	ownerID, owner := registerAndLogin(t, client, "ada")
	memberID, member := registerAndLogin(t, client, "grace")

	club, err := owner.CreateClub(ctx, clubsdk.CreateClubRequest{
		Name:     "Hard SF Circle",
		Synopsis: "one paradigm shift per month",
	})
	require.NoError(t, err)
	require.Equal(t, ownerID, club.OwnerID)

	// Bring grace in through an invite so the roster has two entries.
	invite, err := owner.SendInvite(ctx, memberID, club.ClubID)
	require.NoError(t, err)
	_, err = member.AcceptInvite(ctx, invite.Token)
	require.NoError(t, err)

	t.Run("roster lists owner first", func(t *testing.T) {
		roster, err := member.ListMembers(ctx, club.ClubID)
		require.NoError(t, err)
		require.Len(t, roster.Members, 2)
		require.Equal(t, "owner", roster.Members[0].Role)
		require.Equal(t, "ada", roster.Members[0].Username)
	})

	t.Run("my clubs reflects the membership", func(t *testing.T) {
		clubs, err := member.ListClubs(ctx)
		require.NoError(t, err)
		require.Len(t, clubs.Clubs, 1)
		require.Equal(t, club.ClubID, clubs.Clubs[0].ClubID)
		require.Equal(t, "member", clubs.Clubs[0].Role)
	})

	t.Run("owner promotes and demotes", func(t *testing.T) {
		require.NoError(t, owner.ChangeRole(ctx, club.ClubID, memberID, "admin"))

		roster, err := owner.ListMembers(ctx, club.ClubID)
		require.NoError(t, err)
		require.Equal(t, "admin", roster.Members[1].Role)

		require.NoError(t, owner.ChangeRole(ctx, club.ClubID, memberID, "member"))
	})

	t.Run("member cannot change roles", func(t *testing.T) {
		err := member.ChangeRole(ctx, club.ClubID, ownerID, "member")
		assertAPIError(t, err, http.StatusForbidden, "member changing roles")
	})

	t.Run("owner cannot leave without transferring", func(t *testing.T) {
		err := owner.RemoveMember(ctx, club.ClubID, ownerID)
		assertAPIError(t, err, http.StatusForbidden, "owner leaving")
	})

	t.Run("ownership transfer swaps roles", func(t *testing.T) {
		require.NoError(t, owner.TransferOwnership(ctx, club.ClubID, memberID))

		fresh, err := member.GetClub(ctx, club.ClubID)
		require.NoError(t, err)
		require.Equal(t, memberID, fresh.OwnerID)

		// The old owner is now an admin and may leave.
		require.NoError(t, owner.RemoveMember(ctx, club.ClubID, ownerID))
	})

	t.Run("archiving freezes the club", func(t *testing.T) {
		guestID, _ := registerAndLogin(t, client, "hedy")

		require.NoError(t, member.ArchiveClub(ctx, club.ClubID))

		fresh, err := member.GetClub(ctx, club.ClubID)
		require.NoError(t, err)
		require.Equal(t, "archived", fresh.Status)

		_, err = member.SendInvite(ctx, guestID, club.ClubID)
		assertAPIError(t, err, http.StatusConflict, "inviting into an archived club")
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		require.NoError(t, member.DeleteClub(ctx, club.ClubID))

		_, err := member.GetClub(ctx, club.ClubID)
		assertAPIError(t, err, http.StatusNotFound, "deleted club lookup")
	})
}
