package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
	"github.com/thanarat-p/eventbook/internal/middleware"
	"github.com/thanarat-p/eventbook/pkg/logger"
)

// MockAuthService is a mock implementation of AuthService for testing
type MockAuthService struct {
	SignupFunc        func(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	LoginFunc         func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.Claims, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}

// MockEventService is a mock implementation of EventService for testing
type MockEventService struct {
	CreateEventFunc      func(ctx context.Context, req *dto.CreateEventRequest, image io.Reader, imageName string) (*domain.Event, error)
	GetEventDetailFunc   func(ctx context.Context, id string) (*domain.Event, error)
	ListUpcomingFunc     func(ctx context.Context, p dto.Pagination) (*dto.EventList, error)
	ListUserUpcomingFunc func(ctx context.Context, userID string, p dto.Pagination) (*dto.EventList, error)
}

func (m *MockEventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, image io.Reader, imageName string) (*domain.Event, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, req, image, imageName)
	}
	return nil, nil
}

func (m *MockEventService) GetEventDetail(ctx context.Context, id string) (*domain.Event, error) {
	if m.GetEventDetailFunc != nil {
		return m.GetEventDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEventService) ListUpcoming(ctx context.Context, p dto.Pagination) (*dto.EventList, error) {
	if m.ListUpcomingFunc != nil {
		return m.ListUpcomingFunc(ctx, p)
	}
	return nil, nil
}

func (m *MockEventService) ListUserUpcoming(ctx context.Context, userID string, p dto.Pagination) (*dto.EventList, error) {
	if m.ListUserUpcomingFunc != nil {
		return m.ListUserUpcomingFunc(ctx, userID, p)
	}
	return nil, nil
}

// MockBookingService is a mock implementation of BookingService for testing
type MockBookingService struct {
	BookSeatFunc func(ctx context.Context, eventID, userID string) (*domain.Event, error)
}

func (m *MockBookingService) BookSeat(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	if m.BookSeatFunc != nil {
		return m.BookSeatFunc(ctx, eventID, userID)
	}
	return nil, nil
}

func testLogger() *logger.Logger {
	return logger.Get()
}

// userIDMiddleware stores a fixed user ID the way the auth middleware does
func userIDMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}
