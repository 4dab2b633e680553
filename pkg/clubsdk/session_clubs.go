package clubsdk

import (
	"context"
	"net/http"
)

// CreateClub creates a new book club owned by the authenticated user.
//
// POST /v1/clubs
func (s *Session) CreateClub(ctx context.Context, req CreateClubRequest) (*ClubResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/clubs", req)
	if err != nil {
		return nil, err
	}

	var out ClubResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClub retrieves a club by id.
//
// GET /v1/clubs/{clubID}
func (s *Session) GetClub(ctx context.Context, clubID string) (*ClubResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clubs/"+clubID, nil)
	if err != nil {
		return nil, err
	}

	var out ClubResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClub deletes a club and all of its memberships, invites and reading
// history. Only the club owner may do this.
//
// DELETE /v1/clubs/{clubID}
func (s *Session) DeleteClub(ctx context.Context, clubID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/clubs/"+clubID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ArchiveClub archives a club. Its history stays readable but new invites
// and current-book changes are refused. Only the club owner may do this.
//
// POST /v1/clubs/{clubID}/archive
func (s *Session) ArchiveClub(ctx context.Context, clubID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/clubs/"+clubID+"/archive", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListClubs lists the clubs the session's user belongs to, with their
// role in each.
//
// GET /v1/users/me/clubs
func (s *Session) ListClubs(ctx context.Context) (*ListClubsResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/users/me/clubs", nil)
	if err != nil {
		return nil, err
	}

	var out ListClubsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMembers lists a club's members with their roles.
//
// GET /v1/clubs/{clubID}/members
func (s *Session) ListMembers(ctx context.Context, clubID string) (*ListMembersResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clubs/"+clubID+"/members", nil)
	if err != nil {
		return nil, err
	}

	var out ListMembersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeRole promotes or demotes a member between "admin" and "member".
// Requires owner or admin standing in the club; the owner's own role
// cannot be changed this way.
//
// PATCH /v1/clubs/{clubID}/members/{userID}
func (s *Session) ChangeRole(ctx context.Context, clubID, userID, role string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch,
		"/v1/clubs/"+clubID+"/members/"+userID, ChangeRoleRequest{Role: role})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RemoveMember removes a member from a club. Members may remove themselves
// (leave); owners and admins may remove others. The owner cannot leave
// without first transferring ownership.
//
// DELETE /v1/clubs/{clubID}/members/{userID}
func (s *Session) RemoveMember(ctx context.Context, clubID, userID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/clubs/"+clubID+"/members/"+userID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// TransferOwnership hands club ownership to another existing member.
// The previous owner becomes an admin.
//
// POST /v1/clubs/{clubID}/transfer
func (s *Session) TransferOwnership(ctx context.Context, clubID, newOwnerID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost,
		"/v1/clubs/"+clubID+"/transfer", TransferOwnershipRequest{NewOwnerID: newOwnerID})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetCurrentBook sets the club's current book, closing any open reading
// interval. Requires owner or admin standing.
//
// PUT /v1/clubs/{clubID}/current-book
func (s *Session) SetCurrentBook(ctx context.Context, clubID, bookID string) (*CurrentBookResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut,
		"/v1/clubs/"+clubID+"/current-book", SetCurrentBookRequest{BookID: bookID})
	if err != nil {
		return nil, err
	}

	var out CurrentBookResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentBook retrieves the club's current (open) reading interval.
//
// GET /v1/clubs/{clubID}/current-book
func (s *Session) CurrentBook(ctx context.Context, clubID string) (*CurrentBookResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clubs/"+clubID+"/current-book", nil)
	if err != nil {
		return nil, err
	}

	var out CurrentBookResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScheduleMeeting schedules a club meeting. Any member may do this.
//
// POST /v1/clubs/{clubID}/meetings
func (s *Session) ScheduleMeeting(ctx context.Context, clubID string, req ScheduleMeetingRequest) (*MeetingResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/clubs/"+clubID+"/meetings", req)
	if err != nil {
		return nil, err
	}

	var out MeetingResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClubMeetings lists a club's meetings, soonest first.
//
// GET /v1/clubs/{clubID}/meetings
func (s *Session) ListClubMeetings(ctx context.Context, clubID string) (*ListMeetingsResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clubs/"+clubID+"/meetings", nil)
	if err != nil {
		return nil, err
	}

	var out ListMeetingsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelMeeting cancels a meeting. The creator may cancel their own;
// club owners and admins may cancel any.
//
// DELETE /v1/meetings/{meetingID}
func (s *Session) CancelMeeting(ctx context.Context, meetingID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/meetings/"+meetingID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ReadingHistory lists the club's reading intervals, most recent first.
//
// GET /v1/clubs/{clubID}/history
func (s *Session) ReadingHistory(ctx context.Context, clubID string) (*ReadingHistoryResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/clubs/"+clubID+"/history", nil)
	if err != nil {
		return nil, err
	}

	var out ReadingHistoryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
