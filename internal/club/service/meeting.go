package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/internal/club/store"
	"github.com/chapterhouse/pageturn/pkg/idx"
	"github.com/chapterhouse/pageturn/pkg/slogx"
)

var (
	ErrInvalidMeeting  = errors.New("meeting needs a date and an agenda")
	ErrMeetingNotFound = errors.New("meeting not found")
)

// MeetingService manages club meetings. Any member may schedule one;
// cancelling takes the creator or a club owner/admin.
type MeetingService struct {
	Store store.Store
}

// ScheduleMeeting records a meeting for the club.
func (s *MeetingService) ScheduleMeeting(ctx context.Context, actorID, clubID string, date time.Time, agenda string) (domain.Meeting, error) {
	log := slogx.FromContext(ctx)

	agenda = strings.TrimSpace(agenda)
	if date.IsZero() || agenda == "" || len(agenda) > 2000 {
		return domain.Meeting{}, ErrInvalidMeeting
	}

	meeting := domain.Meeting{
		ID:          idx.New().String(),
		ClubID:      clubID,
		CreatorID:   actorID,
		MeetingDate: date.UTC(),
		Agenda:      agenda,
		CreatedAt:   nowUTC(),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		club, err := tx.Clubs().GetClubByID(ctx, clubID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClubNotFound
			}
			return err
		}
		if club.Status == domain.ClubArchived {
			return ErrClubArchived
		}

		if _, err := memberOf(ctx, tx, actorID, clubID); err != nil {
			return err
		}
		return tx.Meetings().CreateMeeting(ctx, meeting)
	})
	if err != nil {
		return domain.Meeting{}, err
	}

	log.Info("meeting scheduled",
		slog.String("meeting_id", meeting.ID),
		slog.String("club_id", clubID),
	)
	return meeting, nil
}

// ListClubMeetings returns the club's meetings, soonest first.
func (s *MeetingService) ListClubMeetings(ctx context.Context, clubID string) ([]domain.Meeting, error) {
	if _, err := s.Store.Clubs().GetClubByID(ctx, clubID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return s.Store.Meetings().ListMeetingsByClub(ctx, clubID)
}

// CancelMeeting removes a meeting. The creator may cancel their own;
// owners and admins may cancel any.
func (s *MeetingService) CancelMeeting(ctx context.Context, actorID, meetingID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		meeting, err := tx.Meetings().GetMeetingByID(ctx, meetingID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMeetingNotFound
			}
			return err
		}

		if meeting.CreatorID != actorID {
			actor, err := memberOf(ctx, tx, actorID, meeting.ClubID)
			if err != nil {
				return err
			}
			if !actor.Role.CanManageMembers() {
				return ErrForbidden
			}
		}
		return tx.Meetings().DeleteMeeting(ctx, meetingID)
	})
	if err != nil {
		return err
	}

	log.Info("meeting cancelled",
		slog.String("meeting_id", meetingID),
		slog.String("actor_id", actorID),
	)
	return nil
}
