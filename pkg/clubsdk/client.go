package clubsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the PageTurn club service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new club service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with username and password and returns a Session
// holding the issued access token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	tokenResp, err := c.PasswordLogin(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// access token, e.g. one stored from a previous login. expiresIn is the
// remaining lifetime in seconds; pass 0 if unknown and the session will
// assume the token is valid until the server rejects it.
func (c *SDKClient) NewSessionFromToken(accessToken string, expiresIn int) *Session {
	var expiresAt time.Time
	if expiresIn > 0 {
		expiresAt = time.Now().Add(time.Duration(expiresIn)*time.Second - 30*time.Second)
	}

	return &Session{
		client:      c,
		accessToken: accessToken,
		expiresAt:   expiresAt,
	}
}
