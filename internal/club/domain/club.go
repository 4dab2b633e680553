package domain

import "time"

// ClubStatus marks whether a club is live or has been wound down. Archived
// clubs keep their history but are no longer active.
type ClubStatus string

const (
	ClubActive   ClubStatus = "active"
	ClubArchived ClubStatus = "archived"
)

type BookClub struct {
	ID        string
	Name      string
	Synopsis  string
	OwnerID   string // denormalised; the memberships table is authoritative
	Status    ClubStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
