package service

import (
	"context"
	"testing"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newInviteService(t *testing.T) *InviteService {
	t.Helper()

	return &InviteService{
		Store:  newTestStore(t),
		Codec:  newTestCodec(t),
		Issuer: testIssuer,
	}
}

func TestSendInvite(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t)
	st := svc.Store

	owner := seedUser(t, st, "owner")
	member := seedUser(t, st, "member")
	guest := seedUser(t, st, "guest")
	outsider := seedUser(t, st, "outsider")

	club := seedClub(t, st, owner)
	seedMember(t, st, club, member, domain.RoleMember)

	t.Run("any member may invite", func(t *testing.T) {
		inv, token, err := svc.Send(ctx, member.ID, guest.ID, club.ID)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, domain.InvitePending, inv.Status)

		// The stored invite holds a fingerprint, never the raw token.
		require.NotEqual(t, token, inv.TokenHash)
		require.WithinDuration(t, time.Now().Add(jwtx.DefaultInviteTokenTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("duplicate pending invite is rejected", func(t *testing.T) {
		_, _, err := svc.Send(ctx, member.ID, guest.ID, club.ID)
		require.ErrorIs(t, err, ErrDuplicatePending)
	})

	t.Run("a different sender may still invite the same guest", func(t *testing.T) {
		_, _, err := svc.Send(ctx, owner.ID, guest.ID, club.ID)
		require.NoError(t, err)
	})

	t.Run("non-member cannot invite", func(t *testing.T) {
		_, _, err := svc.Send(ctx, outsider.ID, guest.ID, club.ID)
		require.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("recipient must exist and be active", func(t *testing.T) {
		_, _, err := svc.Send(ctx, owner.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK", club.ID)
		require.ErrorIs(t, err, ErrRecipientNotFound)

		ghost := seedUser(t, st, "ghost")
		require.NoError(t, st.Users().DeactivateUser(ctx, ghost.ID))
		_, _, err = svc.Send(ctx, owner.ID, ghost.ID, club.ID)
		require.ErrorIs(t, err, ErrRecipientNotFound)
	})

	t.Run("existing member cannot be invited", func(t *testing.T) {
		_, _, err := svc.Send(ctx, owner.ID, member.ID, club.ID)
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("self-invite is rejected", func(t *testing.T) {
		_, _, err := svc.Send(ctx, member.ID, member.ID, club.ID)
		require.ErrorIs(t, err, ErrSelfInvite)
	})

	t.Run("unknown club is rejected", func(t *testing.T) {
		_, _, err := svc.Send(ctx, owner.ID, guest.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		require.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestAcceptInvite(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t)
	st := svc.Store

	owner := seedUser(t, st, "owner")
	guest := seedUser(t, st, "guest")
	club := seedClub(t, st, owner)

	_, token, err := svc.Send(ctx, owner.ID, guest.ID, club.ID)
	require.NoError(t, err)

	t.Run("only the recipient may accept", func(t *testing.T) {
		stranger := seedUser(t, st, "stranger")
		_, err := svc.Accept(ctx, stranger.ID, token)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("accept creates a member-role membership", func(t *testing.T) {
		m, err := svc.Accept(ctx, guest.ID, token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, m.Role)

		stored, err := st.Memberships().GetMembership(ctx, guest.ID, club.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, stored.Role)

		received, err := svc.ListReceived(ctx, guest.ID, "")
		require.NoError(t, err)
		require.Len(t, received, 1)
		require.Equal(t, domain.InviteAccepted, received[0].Status)
	})

	t.Run("decline after accept reports already processed", func(t *testing.T) {
		err := svc.Decline(ctx, guest.ID, token)
		require.ErrorIs(t, err, ErrAlreadyProcessed)

		// The membership created by the accept is untouched.
		stored, err := st.Memberships().GetMembership(ctx, guest.ID, club.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, stored.Role)

		received, err := svc.ListReceived(ctx, guest.ID, "")
		require.NoError(t, err)
		require.Len(t, received, 1)
		require.Equal(t, domain.InviteAccepted, received[0].Status)
	})

	t.Run("second accept reports already processed", func(t *testing.T) {
		_, err := svc.Accept(ctx, guest.ID, token)
		require.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("garbage token is invalid", func(t *testing.T) {
		_, err := svc.Accept(ctx, guest.ID, "not-a-jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered token is invalid", func(t *testing.T) {
		_, err := svc.Accept(ctx, guest.ID, token+"x")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token from another signer is invalid", func(t *testing.T) {
		other := newTestCodec(t)
		claims := jwtx.NewInviteClaims(owner.ID, guest.ID, club.ID, testIssuer, time.Hour, time.Now())
		forged, err := other.SignInvite(claims)
		require.NoError(t, err)

		_, aerr := svc.Accept(ctx, guest.ID, forged)
		require.ErrorIs(t, aerr, ErrInvalidToken)
	})

	t.Run("expired token is rejected before lookup", func(t *testing.T) {
		claims := jwtx.NewInviteClaims(owner.ID, guest.ID, club.ID, testIssuer, time.Hour, time.Now().Add(-2*time.Hour))
		stale, err := svc.Codec.SignInvite(claims)
		require.NoError(t, err)

		_, aerr := svc.Accept(ctx, guest.ID, stale)
		require.ErrorIs(t, aerr, ErrExpiredToken)
	})
}

func TestDeclineInvite(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t)
	st := svc.Store

	owner := seedUser(t, st, "owner")
	guest := seedUser(t, st, "guest")
	club := seedClub(t, st, owner)

	_, token, err := svc.Send(ctx, owner.ID, guest.ID, club.ID)
	require.NoError(t, err)

	t.Run("decline keeps the row and blocks the token", func(t *testing.T) {
		require.NoError(t, svc.Decline(ctx, guest.ID, token))

		received, err := svc.ListReceived(ctx, guest.ID, "")
		require.NoError(t, err)
		require.Len(t, received, 1)
		require.Equal(t, domain.InviteDeclined, received[0].Status)

		_, err = svc.Accept(ctx, guest.ID, token)
		require.ErrorIs(t, err, ErrAlreadyProcessed)

		_, err = st.Memberships().GetMembership(ctx, guest.ID, club.ID)
		require.Error(t, err)
	})

	t.Run("decline is single-shot too", func(t *testing.T) {
		require.ErrorIs(t, svc.Decline(ctx, guest.ID, token), ErrAlreadyProcessed)
	})

	t.Run("a fresh invite may follow a decline", func(t *testing.T) {
		_, token2, err := svc.Send(ctx, owner.ID, guest.ID, club.ID)
		require.NoError(t, err)

		_, err = svc.Accept(ctx, guest.ID, token2)
		require.NoError(t, err)
	})
}

func TestInviteListings(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t)
	st := svc.Store

	owner := seedUser(t, st, "owner")
	a := seedUser(t, st, "guest-a")
	b := seedUser(t, st, "guest-b")
	club := seedClub(t, st, owner)

	_, _, err := svc.Send(ctx, owner.ID, a.ID, club.ID)
	require.NoError(t, err)
	_, _, err = svc.Send(ctx, owner.ID, b.ID, club.ID)
	require.NoError(t, err)

	sent, err := svc.ListSent(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, sent, 2)

	forA, err := svc.ListReceived(ctx, a.ID, "")
	require.NoError(t, err)
	require.Len(t, forA, 1)
	require.Equal(t, a.ID, forA[0].RecipientID)

	t.Run("status filter narrows the listing", func(t *testing.T) {
		pending, err := svc.ListReceived(ctx, b.ID, domain.InvitePending)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		declined, err := svc.ListReceived(ctx, b.ID, domain.InviteDeclined)
		require.NoError(t, err)
		require.Empty(t, declined)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		_, err := svc.ListReceived(ctx, a.ID, domain.InviteStatus("stale"))
		require.ErrorIs(t, err, ErrInvalidStatusFilter)
	})
}
