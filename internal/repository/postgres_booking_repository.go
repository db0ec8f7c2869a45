package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thanarat-p/eventbook/internal/domain"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL.
// The seat claim, the booking row, and the confirmation outbox message are
// written in a single transaction, so a failure at any step leaves the
// seat count untouched.
type PostgresBookingRepository struct {
	pool       *pgxpool.Pool
	outboxRepo OutboxRepository
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool, outboxRepo OutboxRepository) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		pool:       pool,
		outboxRepo: outboxRepo,
	}
}

// Book atomically reserves a seat for the user on the event
func (r *PostgresBookingRepository) Book(ctx context.Context, event *domain.Event, user *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Conditional increment: claims a seat only while capacity remains,
	// so two concurrent bookings can never oversell the last seat.
	claimQuery := `
		UPDATE events
		SET booked_seats = booked_seats + 1, updated_at = NOW()
		WHERE id = $1 AND booked_seats < capacity
	`
	tag, err := tx.Exec(ctx, claimQuery, event.ID)
	if err != nil {
		return fmt.Errorf("failed to claim seat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		err = tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)", event.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check event existence: %w", err)
		}
		if !exists {
			return domain.ErrEventNotFound
		}
		return domain.ErrEventFull
	}

	bookingQuery := `
		INSERT INTO bookings (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	tag, err = tx.Exec(ctx, bookingQuery, event.ID, user.ID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Rollback releases the seat claimed above.
		return domain.ErrAlreadyBooked
	}

	message, err := domain.NewBookingConfirmationMessage(event, user)
	if err != nil {
		return fmt.Errorf("failed to build confirmation message: %w", err)
	}
	if err := r.outboxRepo.CreateTx(ctx, tx, message); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

// Ensure PostgresBookingRepository implements BookingRepository
var _ BookingRepository = (*PostgresBookingRepository)(nil)
