package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
)

func validCreateRequest() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly Go meetup",
		Location:    "Bangkok",
		Date:        time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Capacity:    "100",
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	eventRepo := newMockEventRepository()
	images := &mockImageStore{}
	svc := NewEventService(eventRepo, newMockUserRepository(), images)

	t.Run("successful creation", func(t *testing.T) {
		image := strings.NewReader("fake image bytes")
		event, err := svc.CreateEvent(context.Background(), validCreateRequest(), image, "poster.jpg")
		if err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}

		if event.ID == "" {
			t.Error("CreateEvent() ID is empty")
		}
		if event.Capacity != 100 {
			t.Errorf("CreateEvent() Capacity = %v, want 100", event.Capacity)
		}
		if event.BookedSeats != 0 {
			t.Errorf("CreateEvent() BookedSeats = %v, want 0", event.BookedSeats)
		}
		if event.ImageURL != "/uploads/poster.jpg" {
			t.Errorf("CreateEvent() ImageURL = %v, want /uploads/poster.jpg", event.ImageURL)
		}
		if eventRepo.events[event.ID] == nil {
			t.Error("CreateEvent() event not persisted")
		}
	})

	t.Run("missing image", func(t *testing.T) {
		_, err := svc.CreateEvent(context.Background(), validCreateRequest(), nil, "")
		if err != domain.ErrImageRequired {
			t.Errorf("CreateEvent() error = %v, want %v", err, domain.ErrImageRequired)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		req := validCreateRequest()
		req.Location = ""

		_, err := svc.CreateEvent(context.Background(), req, nil, "")
		if err != domain.ErrMissingField {
			t.Errorf("CreateEvent() error = %v, want %v", err, domain.ErrMissingField)
		}
	})

	t.Run("non-numeric capacity", func(t *testing.T) {
		req := validCreateRequest()
		req.Capacity = "lots"

		_, err := svc.CreateEvent(context.Background(), req, nil, "")
		if err != domain.ErrInvalidCapacity {
			t.Errorf("CreateEvent() error = %v, want %v", err, domain.ErrInvalidCapacity)
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		req := validCreateRequest()
		req.Capacity = "0"

		_, err := svc.CreateEvent(context.Background(), req, nil, "")
		if err != domain.ErrInvalidCapacity {
			t.Errorf("CreateEvent() error = %v, want %v", err, domain.ErrInvalidCapacity)
		}
	})

	t.Run("datetime-local date format", func(t *testing.T) {
		req := validCreateRequest()
		req.Date = "2027-03-15T19:30"

		event, err := svc.CreateEvent(context.Background(), req, strings.NewReader("img"), "poster.png")
		if err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}
		if event.Date.Year() != 2027 || event.Date.Hour() != 19 {
			t.Errorf("CreateEvent() Date = %v, want 2027-03-15 19:30", event.Date)
		}
	})
}

func TestEventService_GetEventDetail(t *testing.T) {
	eventRepo := newMockEventRepository()
	svc := NewEventService(eventRepo, newMockUserRepository(), &mockImageStore{})

	event := &domain.Event{
		ID:       "event-1",
		Title:    "Concert",
		Date:     time.Now().Add(24 * time.Hour),
		Capacity: 50,
	}
	eventRepo.events[event.ID] = event

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetEventDetail(context.Background(), "event-1")
		if err != nil {
			t.Fatalf("GetEventDetail() error = %v", err)
		}
		if got.Title != "Concert" {
			t.Errorf("GetEventDetail() Title = %v, want Concert", got.Title)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetEventDetail(context.Background(), "missing")
		if err != domain.ErrEventNotFound {
			t.Errorf("GetEventDetail() error = %v, want %v", err, domain.ErrEventNotFound)
		}
	})
}

func TestEventService_ListUpcoming(t *testing.T) {
	eventRepo := newMockEventRepository()
	svc := NewEventService(eventRepo, newMockUserRepository(), &mockImageStore{})

	now := time.Now()
	for i, offset := range []time.Duration{-48 * time.Hour, 24 * time.Hour, 72 * time.Hour, 120 * time.Hour} {
		id := string(rune('a' + i))
		eventRepo.events[id] = &domain.Event{
			ID:       id,
			Title:    "Event " + id,
			Date:     now.Add(offset),
			Capacity: 10,
		}
	}

	t.Run("excludes past events and sorts soonest first", func(t *testing.T) {
		list, err := svc.ListUpcoming(context.Background(), dto.Pagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("ListUpcoming() error = %v", err)
		}

		if list.Total != 3 {
			t.Errorf("ListUpcoming() Total = %v, want 3", list.Total)
		}
		if len(list.Events) != 3 {
			t.Fatalf("ListUpcoming() returned %v events, want 3", len(list.Events))
		}
		for i := 1; i < len(list.Events); i++ {
			if list.Events[i].Date.Before(list.Events[i-1].Date) {
				t.Error("ListUpcoming() events not sorted by date ascending")
			}
		}
	})

	t.Run("pagination", func(t *testing.T) {
		list, err := svc.ListUpcoming(context.Background(), dto.Pagination{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("ListUpcoming() error = %v", err)
		}

		if list.Total != 3 {
			t.Errorf("ListUpcoming() Total = %v, want 3", list.Total)
		}
		if len(list.Events) != 1 {
			t.Errorf("ListUpcoming() page 2 returned %v events, want 1", len(list.Events))
		}
		if list.Page != 2 || list.Limit != 2 {
			t.Errorf("ListUpcoming() Page/Limit = %v/%v, want 2/2", list.Page, list.Limit)
		}
	})

	t.Run("page beyond range", func(t *testing.T) {
		list, err := svc.ListUpcoming(context.Background(), dto.Pagination{Page: 5, Limit: 5})
		if err != nil {
			t.Fatalf("ListUpcoming() error = %v", err)
		}
		if len(list.Events) != 0 {
			t.Errorf("ListUpcoming() returned %v events, want 0", len(list.Events))
		}
		if list.Total != 3 {
			t.Errorf("ListUpcoming() Total = %v, want 3", list.Total)
		}
	})
}

func TestEventService_ListUserUpcoming(t *testing.T) {
	eventRepo := newMockEventRepository()
	userRepo := newMockUserRepository()
	svc := NewEventService(eventRepo, userRepo, &mockImageStore{})

	userRepo.users["user-1"] = &domain.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}

	now := time.Now()
	past := &domain.Event{ID: "past", Date: now.Add(-24 * time.Hour), Capacity: 10}
	soon := &domain.Event{ID: "soon", Date: now.Add(24 * time.Hour), Capacity: 10}
	later := &domain.Event{ID: "later", Date: now.Add(96 * time.Hour), Capacity: 10}
	for _, e := range []*domain.Event{past, soon, later} {
		eventRepo.events[e.ID] = e
	}
	eventRepo.bookings["past"] = map[string]bool{"user-1": true}
	eventRepo.bookings["soon"] = map[string]bool{"user-1": true}
	eventRepo.bookings["later"] = map[string]bool{"user-2": true}

	t.Run("only upcoming booked events", func(t *testing.T) {
		list, err := svc.ListUserUpcoming(context.Background(), "user-1", dto.Pagination{Page: 1, Limit: 5})
		if err != nil {
			t.Fatalf("ListUserUpcoming() error = %v", err)
		}

		if list.Total != 1 {
			t.Errorf("ListUserUpcoming() Total = %v, want 1", list.Total)
		}
		if len(list.Events) != 1 || list.Events[0].ID != "soon" {
			t.Errorf("ListUserUpcoming() Events = %v, want [soon]", list.Events)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.ListUserUpcoming(context.Background(), "missing", dto.Pagination{Page: 1, Limit: 5})
		if err != domain.ErrUserNotFound {
			t.Errorf("ListUserUpcoming() error = %v, want %v", err, domain.ErrUserNotFound)
		}
	})
}
