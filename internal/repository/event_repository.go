package repository

import (
	"context"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create persists a new event
	Create(ctx context.Context, event *domain.Event) error

	// GetByID retrieves an event by ID. Returns nil when no event matches.
	GetByID(ctx context.Context, id string) (*domain.Event, error)

	// ListUpcoming returns events with a date at or after now, soonest
	// first, plus the total number of upcoming events for pagination.
	ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]*domain.Event, int, error)

	// ListUserUpcoming returns the upcoming events the user has booked,
	// soonest first, plus the total count of such events.
	ListUserUpcoming(ctx context.Context, userID string, now time.Time, limit, offset int) ([]*domain.Event, int, error)
}
