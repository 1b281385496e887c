package dto

import "time"

// BookingRequest describes a reservation request for a half-open interval
// [from, to).
type BookingRequest struct {
	ISBN string    `json:"isbn"`
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// BookingResponse describes a committed reservation.
type BookingResponse struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    int64     `json:"user_id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
