package domain

import (
	"strings"
	"time"
)

// Event represents a bookable event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Capacity    int       `json:"capacity"`
	BookedSeats int       `json:"booked_seats"`
	ImageURL    string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate validates all event fields
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrMissingField
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrMissingField
	}
	if strings.TrimSpace(e.Location) == "" {
		return ErrMissingField
	}
	if e.Date.IsZero() {
		return ErrMissingField
	}
	if e.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// IsFull reports whether every seat has been booked
func (e *Event) IsFull() bool {
	return e.BookedSeats >= e.Capacity
}

// AvailableSeats returns the number of seats still open
func (e *Event) AvailableSeats() int {
	return e.Capacity - e.BookedSeats
}

// IsUpcoming reports whether the event starts at or after the given instant
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.Date.Before(now)
}
