package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
	"github.com/thanarat-p/eventbook/internal/repository"
	"github.com/thanarat-p/eventbook/internal/storage"
	"github.com/thanarat-p/eventbook/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// EventService defines the interface for event operations
type EventService interface {
	// CreateEvent validates and persists a new event. The image is
	// required; it is stored and the resulting URL attached to the event.
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, image io.Reader, imageName string) (*domain.Event, error)
	// GetEventDetail retrieves a single event by ID
	GetEventDetail(ctx context.Context, id string) (*domain.Event, error)
	// ListUpcoming returns a page of upcoming events, soonest first
	ListUpcoming(ctx context.Context, p dto.Pagination) (*dto.EventList, error)
	// ListUserUpcoming returns a page of upcoming events the user has booked
	ListUserUpcoming(ctx context.Context, userID string, p dto.Pagination) (*dto.EventList, error)
}

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	images    storage.ImageStore
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, images storage.ImageStore) EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		images:    images,
	}
}

// CreateEvent validates and persists a new event
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, image io.Reader, imageName string) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.create")
	defer span.End()

	event, err := req.Parse()
	if err != nil {
		span.SetStatus(codes.Error, "invalid request")
		return nil, err
	}

	now := time.Now()
	event.ID = uuid.New().String()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := event.Validate(); err != nil {
		span.SetStatus(codes.Error, "invalid event")
		return nil, err
	}

	if image == nil {
		span.SetStatus(codes.Error, "image required")
		return nil, domain.ErrImageRequired
	}

	url, err := s.images.Save(ctx, imageName, image)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	event.ImageURL = url

	if err := s.eventRepo.Create(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("event_id", event.ID))
	span.SetStatus(codes.Ok, "")
	return event, nil
}

// GetEventDetail retrieves a single event by ID
func (s *eventService) GetEventDetail(ctx context.Context, id string) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.detail")
	defer span.End()

	span.SetAttributes(attribute.String("event_id", id))

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if event == nil {
		span.SetStatus(codes.Error, "event not found")
		return nil, domain.ErrEventNotFound
	}

	span.SetStatus(codes.Ok, "")
	return event, nil
}

// ListUpcoming returns a page of upcoming events, soonest first
func (s *eventService) ListUpcoming(ctx context.Context, p dto.Pagination) (*dto.EventList, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.list_upcoming")
	defer span.End()

	events, total, err := s.eventRepo.ListUpcoming(ctx, time.Now(), p.Limit, p.Offset())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if events == nil {
		events = []*domain.Event{}
	}

	span.SetAttributes(attribute.Int("total", total))
	span.SetStatus(codes.Ok, "")
	return &dto.EventList{
		Total:  total,
		Page:   p.Page,
		Limit:  p.Limit,
		Events: events,
	}, nil
}

// ListUserUpcoming returns a page of upcoming events the user has booked
func (s *eventService) ListUserUpcoming(ctx context.Context, userID string, p dto.Pagination) (*dto.EventList, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.event.list_user_upcoming")
	defer span.End()

	span.SetAttributes(attribute.String("user_id", userID))

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

	events, total, err := s.eventRepo.ListUserUpcoming(ctx, userID, time.Now(), p.Limit, p.Offset())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if events == nil {
		events = []*domain.Event{}
	}

	span.SetAttributes(attribute.Int("total", total))
	span.SetStatus(codes.Ok, "")
	return &dto.EventList{
		Total:  total,
		Page:   p.Page,
		Limit:  p.Limit,
		Events: events,
	}, nil
}
