package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/thanarat-p/eventbook/internal/domain"
)

// OutboxRepository defines the interface for outbox message data access
type OutboxRepository interface {
	// CreateTx inserts an outbox message within an existing transaction
	CreateTx(ctx context.Context, tx pgx.Tx, message *domain.OutboxMessage) error

	// GetPendingMessages fetches pending messages for delivery, locking
	// the rows so concurrent workers do not pick up the same batch.
	GetPendingMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)

	// GetFailedMessages fetches failed messages that still have retries left
	GetFailedMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)

	// MarkAsSent marks a message as delivered
	MarkAsSent(ctx context.Context, id string) error

	// MarkAsFailed records a delivery failure and increments the retry count
	MarkAsFailed(ctx context.Context, id string, reason string) error

	// DeleteSentBefore removes sent messages older than the cutoff and
	// returns how many rows were deleted.
	DeleteSentBefore(ctx context.Context, cutoffDays int) (int64, error)
}
