package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/dto"
	"github.com/thanarat-p/eventbook/internal/middleware"
	"github.com/thanarat-p/eventbook/internal/service"
	"github.com/thanarat-p/eventbook/pkg/logger"
	"github.com/thanarat-p/eventbook/pkg/response"
	"go.uber.org/zap"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventService   service.EventService
	bookingService service.BookingService
	log            *logger.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService, bookingService service.BookingService, log *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService:   eventService,
		bookingService: bookingService,
		log:            log,
	}
}

// Create handles POST /api/events/create
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	_ = c.ShouldBind(&req)

	var image io.Reader
	imageName := ""
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		image = file
		imageName = header.Filename
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req, image, imageName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			response.BadRequest(c, "All fields are required.")
		case errors.Is(err, domain.ErrInvalidCapacity):
			response.BadRequest(c, "Capacity must be a positive number.")
		case errors.Is(err, domain.ErrImageRequired):
			response.BadRequest(c, "Image is required.")
		default:
			h.log.Error("event creation failed", zap.Error(err))
			response.InternalError(c, "Error creating event", err)
		}
		return
	}

	response.Created(c, "Event created successfully", gin.H{"event": event})
}

// Upcoming handles GET /api/events/upcoming
func (h *EventHandler) Upcoming(c *gin.Context) {
	p := dto.ParsePagination(c.Query("page"), c.Query("limit"))

	list, err := h.eventService.ListUpcoming(c.Request.Context(), p)
	if err != nil {
		h.log.Error("event listing failed", zap.Error(err))
		response.InternalError(c, "Error fetching events", err)
		return
	}

	response.OK(c, "Upcoming events fetched successfully", gin.H{
		"total":  list.Total,
		"page":   list.Page,
		"limit":  list.Limit,
		"events": list.Events,
	})
}

// Detail handles GET /api/events/event-detail/:id
func (h *EventHandler) Detail(c *gin.Context) {
	event, err := h.eventService.GetEventDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		h.log.Error("event detail failed", zap.String("event_id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Error fetching event details", err)
		return
	}

	response.OK(c, "", gin.H{"event": event})
}

// Book handles POST /api/events/:eventId/book
func (h *EventHandler) Book(c *gin.Context) {
	eventID := c.Param("eventId")
	userID := middleware.UserID(c)

	event, err := h.bookingService.BookSeat(c.Request.Context(), eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrUserNotFound):
			response.NotFound(c, "Event or User not found")
		case errors.Is(err, domain.ErrEventFull):
			response.BadRequest(c, "Seats are fully booked")
		case errors.Is(err, domain.ErrAlreadyBooked):
			response.BadRequest(c, "User has already booked this event")
		default:
			h.log.Error("booking failed",
				zap.String("event_id", eventID),
				zap.String("user_id", userID),
				zap.Error(err))
			response.InternalError(c, "Error booking seat", err)
		}
		return
	}

	response.OK(c, "Seat booked successfully", gin.H{"event": event})
}
