package model

import "time"

// Book describes a bookable catalog entry keyed by ISBN.
type Book struct {
	ID        int64
	ISBN      string
	Title     string
	Author    string
	CreatedAt time.Time
}

// BookInfo carries catalog metadata fetched from an external source.
type BookInfo struct {
	ISBN   string
	Title  string
	Author string
}
