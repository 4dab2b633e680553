package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	// Short-lived for security - typical range is 15m to 1h.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultInviteTokenTTL is the maximum age of a club invitation token.
	// Expiry is enforced cryptographically at accept time, not by a sweep job.
	DefaultInviteTokenTTL = 7 * 24 * time.Hour
)

// AccessClaims are the access-token claims carried by authenticated API
// requests. The subject is the user id.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Username for the authenticated user
	Username string `json:"username,omitempty"`
}

// InviteClaims are the self-describing claims embedded in a club
// invitation token: who sent it, for which club, and to whom. A recipient
// can follow an invite link without any prior lookup, and tampering is
// caught by the signature before any database read.
type InviteClaims struct {
	jwt.RegisteredClaims

	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	ClubID      string `json:"club_id"`
}

// NewAccessClaims builds minimally-correct access claims.
func NewAccessClaims(subject, username, issuer string, ttl time.Duration, now time.Time) AccessClaims {
	return AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
	}
}

// NewInviteClaims builds invite claims for (sender, recipient, club) with
// the given TTL.
func NewInviteClaims(senderID, recipientID, clubID, issuer string, ttl time.Duration, now time.Time) InviteClaims {
	return InviteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   recipientID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SenderID:    senderID,
		RecipientID: recipientID,
		ClubID:      clubID,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
