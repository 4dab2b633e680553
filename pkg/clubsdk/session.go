package clubsdk

import (
	"fmt"
	"sync"
	"time"
)

// Session represents an authenticated session with the club service.
// Access tokens are short-lived and are not refreshed automatically;
// when a token expires, authenticate again with SDKClient.Login.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time // zero when unknown
}

// newSession creates a new authenticated session from a token response.
func newSession(client *SDKClient, tokenResp *TokenResponse) *Session {
	// Subtract a 30 second buffer so we fail locally before the server does.
	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - 30*time.Second)

	return &Session{
		client:      client,
		accessToken: tokenResp.AccessToken,
		expiresAt:   expiresAt,
	}
}

// validToken returns the access token, or an error if it is known to be expired.
func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", fmt.Errorf("access token expired, login again")
	}
	return s.accessToken, nil
}

// AccessToken returns the current access token without checking expiration.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}
