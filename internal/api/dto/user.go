package dto

import "time"

// CreateUserRequest represents the user creation request. Field content
// is validated by the service so violations carry its exact messages;
// binding only rejects malformed JSON.
type CreateUserRequest struct {
	Username string `json:"username" example:"johndoe"`
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"secret123"`
}

// UpdateUserRequest represents the user update request; any subset of
// fields may be supplied.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse represents a user. The password hash is never included.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
