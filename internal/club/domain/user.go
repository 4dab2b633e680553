package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	Active       bool   // false once deactivated; row is kept for audit
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the minimal public view of a user, used in listings.
type UserRef struct {
	ID       string
	Username string
}
