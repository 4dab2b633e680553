package domain

import "time"

// InviteStatus is the lifecycle state of an invite. Pending is the only
// state from which transitions are allowed; accepted and declined are
// terminal.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// Valid reports whether s is one of the known invite states.
func (s InviteStatus) Valid() bool {
	switch s {
	case InvitePending, InviteAccepted, InviteDeclined:
		return true
	}
	return false
}

type Invite struct {
	ID          string
	SenderID    string
	RecipientID string
	ClubID      string
	Status      InviteStatus
	TokenHash   string // SHA-256 fingerprint of the signed invite token
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
