package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// mockUserRepository is a mock implementation of repository.UserRepository
type mockUserRepository struct {
	users       map[string]*domain.User
	emailIndex  map[string]*domain.User
	createError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

// mockEventRepository is a mock implementation of repository.EventRepository
type mockEventRepository struct {
	events      map[string]*domain.Event
	bookings    map[string]map[string]bool // eventID -> userID -> booked
	createError error
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{
		events:   make(map[string]*domain.Event),
		bookings: make(map[string]map[string]bool),
	}
}

func (r *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if r.createError != nil {
		return r.createError
	}
	r.events[event.ID] = event
	return nil
}

func (r *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.events[id], nil
}

func (r *mockEventRepository) ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	var upcoming []*domain.Event
	for _, event := range r.events {
		if !event.Date.Before(now) {
			upcoming = append(upcoming, event)
		}
	}
	return paginateEvents(upcoming, limit, offset)
}

func (r *mockEventRepository) ListUserUpcoming(ctx context.Context, userID string, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	var upcoming []*domain.Event
	for eventID, users := range r.bookings {
		event := r.events[eventID]
		if event != nil && users[userID] && !event.Date.Before(now) {
			upcoming = append(upcoming, event)
		}
	}
	return paginateEvents(upcoming, limit, offset)
}

func paginateEvents(events []*domain.Event, limit, offset int) ([]*domain.Event, int, error) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	total := len(events)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return events[offset:end], total, nil
}

// mockBookingRepository is a mock implementation of repository.BookingRepository.
// It mutates the event repository's seat counts the same way the
// transactional implementation does.
type mockBookingRepository struct {
	eventRepo *mockEventRepository
	messages  []*domain.OutboxMessage
	bookError error
}

func newMockBookingRepository(eventRepo *mockEventRepository) *mockBookingRepository {
	return &mockBookingRepository{eventRepo: eventRepo}
}

func (r *mockBookingRepository) Book(ctx context.Context, event *domain.Event, user *domain.User) error {
	if r.bookError != nil {
		return r.bookError
	}
	stored := r.eventRepo.events[event.ID]
	if stored == nil {
		return domain.ErrEventNotFound
	}
	if stored.BookedSeats >= stored.Capacity {
		return domain.ErrEventFull
	}
	if r.eventRepo.bookings[event.ID][user.ID] {
		return domain.ErrAlreadyBooked
	}
	stored.BookedSeats++
	if r.eventRepo.bookings[event.ID] == nil {
		r.eventRepo.bookings[event.ID] = make(map[string]bool)
	}
	r.eventRepo.bookings[event.ID][user.ID] = true

	message, err := domain.NewBookingConfirmationMessage(stored, user)
	if err != nil {
		return err
	}
	r.messages = append(r.messages, message)
	return nil
}

// mockEventCache records invalidated event IDs
type mockEventCache struct {
	invalidated []string
}

func (c *mockEventCache) Invalidate(ctx context.Context, id string) {
	c.invalidated = append(c.invalidated, id)
}

// mockImageStore returns a fixed URL without touching the filesystem
type mockImageStore struct {
	savedNames []string
	saveError  error
}

func (s *mockImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if s.saveError != nil {
		return "", s.saveError
	}
	s.savedNames = append(s.savedNames, name)
	return "/uploads/" + name, nil
}
