package clubsdk

import (
	"context"
	"net/http"
)

// Register creates a new user account.
//
// POST /v1/auth/register
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// PasswordLogin exchanges a username and password for an access token.
// Most callers should use Login, which wraps the token in a Session.
//
// POST /v1/auth/login
func (c *SDKClient) PasswordLogin(ctx context.Context, username, password string) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out TokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
