package dto

import (
	"strconv"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
)

const (
	// DefaultPage is the first page of a listing
	DefaultPage = 1
	// DefaultLimit is the page size when the caller does not supply one
	DefaultLimit = 5
)

// CreateEventRequest carries the multipart form fields of event creation
type CreateEventRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Location    string `form:"location"`
	Date        string `form:"date"`
	Capacity    string `form:"capacity"`
}

// Parse validates the form fields and converts them into an Event.
// Returns domain.ErrMissingField or domain.ErrInvalidCapacity on bad input.
func (r *CreateEventRequest) Parse() (*domain.Event, error) {
	if r.Title == "" || r.Description == "" || r.Location == "" || r.Date == "" || r.Capacity == "" {
		return nil, domain.ErrMissingField
	}

	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		// The frontend's datetime-local input omits the zone
		date, err = time.Parse("2006-01-02T15:04", r.Date)
		if err != nil {
			return nil, domain.ErrMissingField
		}
	}

	capacity, err := strconv.Atoi(r.Capacity)
	if err != nil || capacity <= 0 {
		return nil, domain.ErrInvalidCapacity
	}

	return &domain.Event{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Date:        date,
		Capacity:    capacity,
	}, nil
}

// Pagination carries page/limit query parameters
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination parses the page and limit query values, falling back to
// defaults for missing or malformed input. Limit is honored as supplied and
// not upper-bounded.
func ParsePagination(pageStr, limitStr string) Pagination {
	page := DefaultPage
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}

	limit := DefaultLimit
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		limit = l
	}

	return Pagination{Page: page, Limit: limit}
}

// Offset returns the row offset for store-level pagination
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// EventList is the paginated listing response body
type EventList struct {
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Events []*domain.Event `json:"events"`
}
