package domain

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	CreatedAt    time.Time `json:"created_at"`
}

// Claims represents the verified identity carried by an access token.
// Authorization decisions rely solely on these claims; the account is not
// re-fetched per request, so a deleted account's still-valid token remains
// authenticated until it expires.
type Claims struct {
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"exp"`
}
