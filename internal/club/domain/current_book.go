package domain

import "time"

// CurrentBook is one reading interval of a club. EndDate is nil while the
// interval is open; a club has at most one open interval at a time.
type CurrentBook struct {
	ID        string
	ClubID    string
	BookID    string
	StartDate time.Time
	EndDate   *time.Time
}

// ReadingEntry is a reading interval joined with the book's details, as
// shown in current-book and history listings.
type ReadingEntry struct {
	CurrentBook
	Title  string
	Author string
}
