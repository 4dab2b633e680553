package domain

import "time"

// Review is a user's take on a catalogue book: a 1-5 star rating with
// free-text content. Reviews belong to the user, not to any club.
type Review struct {
	ID        string
	UserID    string
	BookID    string
	Rating    int
	Content   string
	CreatedAt time.Time
}
