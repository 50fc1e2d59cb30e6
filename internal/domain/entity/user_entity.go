package entity

import (
	"time"
)

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in PasswordHash, never as plaintext.
// Username and ProfilePicture are optional; empty means unset.
type User struct {
	ID             int64
	Email          string
	PasswordHash   string
	Username       string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
