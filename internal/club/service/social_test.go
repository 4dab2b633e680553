package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SocialService{Store: st}

	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	t.Run("creates a one-directional edge", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

		following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.True(t, following)

		// No reciprocal edge.
		reverse, err := svc.IsFollowing(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		require.False(t, reverse)
	})

	t.Run("rejects duplicate follow", func(t *testing.T) {
		require.ErrorIs(t, svc.Follow(ctx, alice.ID, bob.ID), ErrAlreadyFollowing)
	})

	t.Run("rejects self-follow", func(t *testing.T) {
		require.ErrorIs(t, svc.Follow(ctx, alice.ID, alice.ID), ErrSelfFollow)
	})

	t.Run("rejects unknown target", func(t *testing.T) {
		require.ErrorIs(t, svc.Follow(ctx, alice.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK"), ErrUserNotFound)
	})

	t.Run("rejects deactivated target", func(t *testing.T) {
		ghost := seedUser(t, st, "ghost")
		require.NoError(t, st.Users().DeactivateUser(ctx, ghost.ID))
		require.ErrorIs(t, svc.Follow(ctx, alice.ID, ghost.ID), ErrUserNotFound)
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SocialService{Store: st}

	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	t.Run("removes the edge", func(t *testing.T) {
		require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))

		following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.False(t, following)
	})

	t.Run("second unfollow reports not following", func(t *testing.T) {
		require.ErrorIs(t, svc.Unfollow(ctx, alice.ID, bob.ID), ErrNotFollowing)
	})

	t.Run("follow again after unfollow works", func(t *testing.T) {
		require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	})
}

func TestFollowListings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SocialService{Store: st}

	target := seedUser(t, st, "celebrity")

	// Ten followers in a known order.
	var followerIDs []string
	for i := range 10 {
		u := seedUser(t, st, fmt.Sprintf("fan%02d", i))
		require.NoError(t, svc.Follow(ctx, u.ID, target.ID))
		followerIDs = append(followerIDs, u.ID)
	}

	t.Run("followers are paged oldest first", func(t *testing.T) {
		page, err := svc.Followers(ctx, target.ID, 4, 0)
		require.NoError(t, err)
		require.Len(t, page, 4)

		rest, err := svc.Followers(ctx, target.ID, 100, 4)
		require.NoError(t, err)
		require.Len(t, rest, 6)

		var got []string
		for _, u := range append(page, rest...) {
			got = append(got, u.ID)
		}
		require.ElementsMatch(t, followerIDs, got)
	})

	t.Run("following reflects the other direction", func(t *testing.T) {
		fan := followerIDs[0]
		following, err := svc.Following(ctx, fan, 10, 0)
		require.NoError(t, err)
		require.Len(t, following, 1)
		require.Equal(t, target.ID, following[0].ID)

		// The celebrity follows nobody.
		none, err := svc.Following(ctx, target.ID, 10, 0)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("listing an unknown user fails", func(t *testing.T) {
		_, err := svc.Followers(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK", 10, 0)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
