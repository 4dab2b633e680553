package service

import (
	"context"
	"testing"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/stretchr/testify/require"
)

func TestScheduleMeeting(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MeetingService{Store: st}

	owner := seedUser(t, st, "owner")
	member := seedUser(t, st, "member")
	outsider := seedUser(t, st, "outsider")

	club := seedClub(t, st, owner)
	seedMember(t, st, club, member, domain.RoleMember)

	when := time.Now().Add(72 * time.Hour)

	t.Run("any member may schedule", func(t *testing.T) {
		meeting, err := svc.ScheduleMeeting(ctx, member.ID, club.ID, when, "chapters 1-10")
		require.NoError(t, err)
		require.Equal(t, member.ID, meeting.CreatorID)
		require.Equal(t, when.UTC().Truncate(time.Second), meeting.MeetingDate.Truncate(time.Second))
	})

	t.Run("non-member cannot schedule", func(t *testing.T) {
		_, err := svc.ScheduleMeeting(ctx, outsider.ID, club.ID, when, "crashing the party")
		require.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("blank agenda is rejected", func(t *testing.T) {
		_, err := svc.ScheduleMeeting(ctx, member.ID, club.ID, when, "  ")
		require.ErrorIs(t, err, ErrInvalidMeeting)
	})

	t.Run("unknown club is rejected", func(t *testing.T) {
		_, err := svc.ScheduleMeeting(ctx, member.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK", when, "nowhere")
		require.ErrorIs(t, err, ErrClubNotFound)
	})

	t.Run("archived club refuses meetings", func(t *testing.T) {
		members := &MembershipService{Store: st}
		require.NoError(t, members.ArchiveClub(ctx, owner.ID, club.ID))

		_, err := svc.ScheduleMeeting(ctx, member.ID, club.ID, when, "one last hurrah")
		require.ErrorIs(t, err, ErrClubArchived)
	})
}

func TestListClubMeetings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MeetingService{Store: st}

	owner := seedUser(t, st, "owner")
	club := seedClub(t, st, owner)

	later, err := svc.ScheduleMeeting(ctx, owner.ID, club.ID, time.Now().Add(14*24*time.Hour), "wrap-up")
	require.NoError(t, err)
	sooner, err := svc.ScheduleMeeting(ctx, owner.ID, club.ID, time.Now().Add(24*time.Hour), "kick-off")
	require.NoError(t, err)

	t.Run("soonest first", func(t *testing.T) {
		meetings, err := svc.ListClubMeetings(ctx, club.ID)
		require.NoError(t, err)
		require.Len(t, meetings, 2)
		require.Equal(t, sooner.ID, meetings[0].ID)
		require.Equal(t, later.ID, meetings[1].ID)
	})

	t.Run("unknown club is rejected", func(t *testing.T) {
		_, err := svc.ListClubMeetings(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		require.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestCancelMeeting(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MeetingService{Store: st}

	owner := seedUser(t, st, "owner")
	creator := seedUser(t, st, "creator")
	bystander := seedUser(t, st, "bystander")

	club := seedClub(t, st, owner)
	seedMember(t, st, club, creator, domain.RoleMember)
	seedMember(t, st, club, bystander, domain.RoleMember)

	when := time.Now().Add(48 * time.Hour)

	t.Run("another member cannot cancel", func(t *testing.T) {
		meeting, err := svc.ScheduleMeeting(ctx, creator.ID, club.ID, when, "book swap")
		require.NoError(t, err)

		require.ErrorIs(t, svc.CancelMeeting(ctx, bystander.ID, meeting.ID), ErrForbidden)
		require.NoError(t, svc.CancelMeeting(ctx, creator.ID, meeting.ID))
	})

	t.Run("owner cancels any meeting", func(t *testing.T) {
		meeting, err := svc.ScheduleMeeting(ctx, creator.ID, club.ID, when, "reschedule me")
		require.NoError(t, err)

		require.NoError(t, svc.CancelMeeting(ctx, owner.ID, meeting.ID))
	})

	t.Run("unknown meeting is rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.CancelMeeting(ctx, owner.ID, "01JUNKJUNKJUNKJUNKJUNKJUNK"), ErrMeetingNotFound)
	})
}
