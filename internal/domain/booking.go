package domain

import (
	"time"
)

// Booking records one user holding one seat on one event. It is created
// atomically together with the seat-count increment and never updated;
// cancellation does not exist in this system.
type Booking struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BelongsToUser checks if the booking belongs to the specified user
func (b *Booking) BelongsToUser(userID string) bool {
	return b.UserID == userID
}
