package clubsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Deactivate deactivates the authenticated user's account. The account is
// retained for audit but can no longer log in, and its pending invites are
// no longer acceptable.
//
// DELETE /v1/users/me
func (s *Session) Deactivate(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/users/me", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// GetUser fetches a user's public profile. Deactivated accounts report
// as not found.
//
// GET /v1/users/{userID}
func (s *Session) GetUser(ctx context.Context, userID string) (*UserProfileResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/users/"+userID, nil)
	if err != nil {
		return nil, err
	}

	var out UserProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Follow makes the authenticated user follow another user. Following is
// one-directional; the other user is not notified and no reciprocal edge
// is created.
//
// PUT /v1/follows/{userID}
func (s *Session) Follow(ctx context.Context, userID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/v1/follows/"+userID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Unfollow removes the authenticated user's follow edge to another user.
//
// DELETE /v1/follows/{userID}
func (s *Session) Unfollow(ctx context.Context, userID string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/follows/"+userID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Followers lists the users following the given user, oldest edge first.
//
// GET /v1/users/{userID}/followers
func (s *Session) Followers(ctx context.Context, userID string, limit, offset int) (*FollowListResponse, error) {
	path := fmt.Sprintf("/v1/users/%s/followers?limit=%d&offset=%d", userID, limit, offset)
	resp, err := s.doAuthJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out FollowListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Following lists the users the given user follows, oldest edge first.
//
// GET /v1/users/{userID}/following
func (s *Session) Following(ctx context.Context, userID string, limit, offset int) (*FollowListResponse, error) {
	path := fmt.Sprintf("/v1/users/%s/following?limit=%d&offset=%d", userID, limit, offset)
	resp, err := s.doAuthJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out FollowListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
