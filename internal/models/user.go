package models

import "time"

// User is a locally registered account. Passwords are stored and compared
// in plain text, matching the original data format; this is a single-user
// convenience, not a security boundary.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
