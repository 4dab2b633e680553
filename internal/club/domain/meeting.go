package domain

import "time"

// Meeting is a scheduled get-together of a club, with an agenda set by
// whoever scheduled it.
type Meeting struct {
	ID          string
	ClubID      string
	CreatorID   string
	MeetingDate time.Time
	Agenda      string
	CreatedAt   time.Time
}
