package model

import "time"

// BookingStatus describes the booking lifecycle.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// Booking reserves one book for one user over a half-open interval.
type Booking struct {
	ID        int64
	BookID    int64
	UserID    int64
	Interval  Interval
	Status    BookingStatus
	CreatedAt time.Time
}
