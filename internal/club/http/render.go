package http

import (
	"time"

	"github.com/chapterhouse/pageturn/internal/club/domain"
	"github.com/chapterhouse/pageturn/pkg/clubsdk"
)

// Wire timestamps are RFC3339 in UTC.
func renderTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func renderClub(c domain.BookClub) clubsdk.ClubResponse {
	return clubsdk.ClubResponse{
		ClubID:    c.ID,
		Name:      c.Name,
		Synopsis:  c.Synopsis,
		OwnerID:   c.OwnerID,
		Status:    string(c.Status),
		CreatedAt: renderTime(c.CreatedAt),
	}
}

func renderMembers(members []domain.ClubMember) []clubsdk.MemberInfo {
	out := make([]clubsdk.MemberInfo, 0, len(members))
	for _, m := range members {
		out = append(out, clubsdk.MemberInfo{
			UserID:   m.UserID,
			Username: m.Username,
			Role:     string(m.Role),
			JoinedAt: renderTime(m.JoinedAt),
		})
	}
	return out
}

func renderUserClubs(clubs []domain.UserClub) []clubsdk.UserClubInfo {
	out := make([]clubsdk.UserClubInfo, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, clubsdk.UserClubInfo{
			ClubID:   c.ClubID,
			Name:     c.Name,
			Synopsis: c.Synopsis,
			Role:     string(c.Role),
			JoinedAt: renderTime(c.JoinedAt),
		})
	}
	return out
}

func renderInvites(invites []domain.Invite) []clubsdk.InviteInfo {
	out := make([]clubsdk.InviteInfo, 0, len(invites))
	for _, inv := range invites {
		out = append(out, clubsdk.InviteInfo{
			InviteID:    inv.ID,
			SenderID:    inv.SenderID,
			RecipientID: inv.RecipientID,
			ClubID:      inv.ClubID,
			Status:      string(inv.Status),
			CreatedAt:   renderTime(inv.CreatedAt),
			UpdatedAt:   renderTime(inv.UpdatedAt),
		})
	}
	return out
}

func renderUsers(users []domain.UserRef) []clubsdk.UserSummary {
	out := make([]clubsdk.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, clubsdk.UserSummary{
			UserID:   u.ID,
			Username: u.Username,
		})
	}
	return out
}

func renderReadingEntry(e domain.ReadingEntry) clubsdk.CurrentBookResponse {
	resp := clubsdk.CurrentBookResponse{
		ClubID:    e.ClubID,
		BookID:    e.BookID,
		Title:     e.Title,
		Author:    e.Author,
		StartDate: renderTime(e.StartDate),
	}
	if e.EndDate != nil {
		resp.EndDate = renderTime(*e.EndDate)
	}
	return resp
}

func renderReview(rv domain.Review) clubsdk.ReviewResponse {
	return clubsdk.ReviewResponse{
		ReviewID:  rv.ID,
		UserID:    rv.UserID,
		BookID:    rv.BookID,
		Rating:    rv.Rating,
		Content:   rv.Content,
		CreatedAt: renderTime(rv.CreatedAt),
	}
}

func renderMeeting(m domain.Meeting) clubsdk.MeetingResponse {
	return clubsdk.MeetingResponse{
		MeetingID:   m.ID,
		ClubID:      m.ClubID,
		CreatorID:   m.CreatorID,
		MeetingDate: renderTime(m.MeetingDate),
		Agenda:      m.Agenda,
		CreatedAt:   renderTime(m.CreatedAt),
	}
}

func renderBook(b domain.Book) clubsdk.BookResponse {
	return clubsdk.BookResponse{
		BookID:    b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		CreatedAt: renderTime(b.CreatedAt),
	}
}
