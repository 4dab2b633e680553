package domain

import "time"

type Book struct {
	ID        string
	Title     string
	Author    string
	ISBN      string // optional, empty when unknown
	CreatedAt time.Time
}
