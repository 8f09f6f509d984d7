package domain

import "time"

// UserID uniquely identifies a user within the system.
type UserID int64

// User is an account. It can be looked up either by email or by API key.
type User struct {
	ID     UserID `json:"id"`
	Email  string `json:"email"`
	APIKey string `json:"apikey,omitempty"`
	// Password is the bcrypt hash of the user's password.
	Password string `json:"password,omitempty"`
	Verified bool   `json:"verified"`
	Banned   bool   `json:"banned"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
