package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thanarat-p/eventbook/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// Create persists a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, date, capacity, booked_seats, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Date,
		event.Capacity,
		event.BookedSeats,
		event.ImageURL,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, location, date, capacity, booked_seats, image_url, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	event := &domain.Event{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.Date,
		&event.Capacity,
		&event.BookedSeats,
		&event.ImageURL,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListUpcoming returns events dated at or after now, soonest first
func (r *PostgresEventRepository) ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM events WHERE date >= $1", now).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count upcoming events: %w", err)
	}

	query := `
		SELECT id, title, description, location, date, capacity, booked_seats, image_url, created_at, updated_at
		FROM events
		WHERE date >= $1
		ORDER BY date ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, now, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListUserUpcoming returns the upcoming events the user has booked, soonest first
func (r *PostgresEventRepository) ListUserUpcoming(ctx context.Context, userID string, now time.Time, limit, offset int) ([]*domain.Event, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM events e
		JOIN bookings b ON b.event_id = e.id
		WHERE b.user_id = $1 AND e.date >= $2
	`
	err := r.pool.QueryRow(ctx, countQuery, userID, now).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count user events: %w", err)
	}

	query := `
		SELECT e.id, e.title, e.description, e.location, e.date, e.capacity, e.booked_seats, e.image_url, e.created_at, e.updated_at
		FROM events e
		JOIN bookings b ON b.event_id = e.id
		WHERE b.user_id = $1 AND e.date >= $2
		ORDER BY e.date ASC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, userID, now, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list user events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		event := &domain.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.Date,
			&event.Capacity,
			&event.BookedSeats,
			&event.ImageURL,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// Ensure PostgresEventRepository implements EventRepository
var _ EventRepository = (*PostgresEventRepository)(nil)
