package club_test

import (
	"net/http"
	"testing"

	"github.com/chapterhouse/pageturn/pkg/clubsdk"
	"github.com/stretchr/testify/require"
)

// TestFollowGraph verifies the follow graph is asymmetric and paged.
func TestFollowGraph(t *testing.T) {
	baseURL, cleanup := setupClubContainer(t)
	defer cleanup()

	client := clubsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	aliceID, alice := registerAndLogin(t, client, "alice")
	bobID, bob := registerAndLogin(t, client, "bob")

	require.NoError(t, alice.Follow(ctx, bobID))

	t.Run("following is one-directional", func(t *testing.T) {
		following, err := alice.Following(ctx, aliceID, 0, 0)
		require.NoError(t, err)
		require.Len(t, following.Users, 1)
		require.Equal(t, "bob", following.Users[0].Username)

		// Bob follows nobody.
		following, err = bob.Following(ctx, bobID, 0, 0)
		require.NoError(t, err)
		require.Empty(t, following.Users)

		followers, err := bob.Followers(ctx, bobID, 0, 0)
		require.NoError(t, err)
		require.Len(t, followers.Users, 1)
		require.Equal(t, "alice", followers.Users[0].Username)
	})

	t.Run("profile lookup", func(t *testing.T) {
		profile, err := alice.GetUser(ctx, bobID)
		require.NoError(t, err)
		require.Equal(t, "bob", profile.Username)
		require.NotEmpty(t, profile.CreatedAt)
	})

	t.Run("self-follow is rejected", func(t *testing.T) {
		err := alice.Follow(ctx, aliceID)
		assertAPIError(t, err, http.StatusBadRequest, "self follow")
	})

	t.Run("double follow conflicts", func(t *testing.T) {
		err := alice.Follow(ctx, bobID)
		assertAPIError(t, err, http.StatusConflict, "double follow")
	})

	t.Run("unfollow removes only the one edge", func(t *testing.T) {
		require.NoError(t, bob.Follow(ctx, aliceID))
		require.NoError(t, alice.Unfollow(ctx, bobID))

		followers, err := alice.Followers(ctx, aliceID, 0, 0)
		require.NoError(t, err)
		require.Len(t, followers.Users, 1, "bob's edge survives")

		err = alice.Unfollow(ctx, bobID)
		assertAPIError(t, err, http.StatusNotFound, "unfollow twice")
	})

	t.Run("deactivated users cannot be followed", func(t *testing.T) {
		ghostID, ghost := registerAndLogin(t, client, "ghost")
		require.NoError(t, ghost.Deactivate(ctx))

		err := alice.Follow(ctx, ghostID)
		assertAPIError(t, err, http.StatusNotFound, "following a deactivated user")

		_, err = alice.GetUser(ctx, ghostID)
		assertAPIError(t, err, http.StatusNotFound, "deactivated profile lookup")
	})
}
