package clubsdk

import (
	"context"
	"net/http"
	"net/url"
)

// SendInvite invites another user to a club. The sender must be a member of
// the club and the recipient must not already be a member. The returned
// token is shown once; it is what the recipient presents to accept.
//
// POST /v1/invites
func (s *Session) SendInvite(ctx context.Context, recipientID, clubID string) (*InviteResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/invites", SendInviteRequest{
		RecipientID: recipientID,
		ClubID:      clubID,
	})
	if err != nil {
		return nil, err
	}

	var out InviteResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite redeems an invite token, joining the authenticated user to
// the club as a member.
//
// POST /v1/invites/accept
func (s *Session) AcceptInvite(ctx context.Context, token string) (*AcceptInviteResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/invites/accept", RedeemInviteRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var out AcceptInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeclineInvite declines an invite token. The invite is kept for audit in
// declined state and its token can no longer be redeemed.
//
// POST /v1/invites/decline
func (s *Session) DeclineInvite(ctx context.Context, token string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/invites/decline", RedeemInviteRequest{Token: token})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListSentInvites lists invites sent by the authenticated user.
//
// GET /v1/invites/sent
func (s *Session) ListSentInvites(ctx context.Context) (*ListInvitesResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/invites/sent", nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReceivedInvites lists invites addressed to the authenticated user.
// A non-empty status ("pending", "accepted" or "declined") narrows the
// listing to that state.
//
// GET /v1/invites/received
func (s *Session) ListReceivedInvites(ctx context.Context, status string) (*ListInvitesResponse, error) {
	path := "/v1/invites/received"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	resp, err := s.doAuthJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
