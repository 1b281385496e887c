package dto

import "time"

// UserResponse describes a user visible over the API. The password hash
// never leaves the service.
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	IsEmployee bool      `json:"is_employee"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChangeEmailRequest carries the replacement email for the current account.
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email"`
}

// ChangePasswordRequest carries old and new passwords.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// DeleteUserRequest re-confirms the password before account removal.
type DeleteUserRequest struct {
	Password string `json:"password"`
}
