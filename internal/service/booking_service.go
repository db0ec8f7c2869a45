package service

import (
	"context"

	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/repository"
	"github.com/thanarat-p/eventbook/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// EventCache invalidates cached event reads after a write
type EventCache interface {
	Invalidate(ctx context.Context, id string)
}

// BookingService defines the interface for booking operations
type BookingService interface {
	// BookSeat reserves a seat on the event for the user and returns
	// the event with its updated seat count. The seat claim, booking
	// row, and confirmation message are committed together; the
	// confirmation email is delivered asynchronously.
	BookSeat(ctx context.Context, eventID, userID string) (*domain.Event, error)
}

// bookingService implements BookingService
type bookingService struct {
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	cache       EventCache
}

// NewBookingService creates a new BookingService
func NewBookingService(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	cache EventCache,
) BookingService {
	return &bookingService{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// BookSeat reserves a seat on the event for the user
func (s *bookingService) BookSeat(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.booking.book_seat")
	defer span.End()

	span.SetAttributes(
		attribute.String("event_id", eventID),
		attribute.String("user_id", userID),
	)

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if event == nil {
		span.SetStatus(codes.Error, "event not found")
		return nil, domain.ErrEventNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "user not found")
		return nil, domain.ErrUserNotFound
	}

	if err := s.bookingRepo.Book(ctx, event, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// The stored seat count changed, drop the cached copy.
	if s.cache != nil {
		s.cache.Invalidate(ctx, eventID)
	}

	// Re-read so the response body carries the committed seat count.
	booked, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil || booked == nil {
		span.SetStatus(codes.Ok, "")
		return event, nil
	}

	span.SetStatus(codes.Ok, "")
	return booked, nil
}
