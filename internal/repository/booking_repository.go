package repository

import (
	"context"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	// Book atomically reserves a seat for the user on the event and
	// records a confirmation message for delivery. Returns
	// domain.ErrEventFull when no seats remain and
	// domain.ErrAlreadyBooked when the user already holds a seat.
	Book(ctx context.Context, event *domain.Event, user *domain.User) error
}
