package model

import "time"

// User represents a registered library account identified by email.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsEmployee   bool
	CreatedAt    time.Time
}
