package dto

import "time"

// BookRequest describes a catalog entry payload.
type BookRequest struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookBatchRequest wraps several catalog entries.
type BookBatchRequest struct {
	Books []BookRequest `json:"books"`
}

// UpdateTitleRequest carries the replacement title.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// BookResponse describes a catalog entry visible over the API.
type BookResponse struct {
	ID        int64     `json:"id"`
	ISBN      string    `json:"isbn"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
