package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thanarat-p/eventbook/internal/domain"
)

// PostgresOutboxRepository implements OutboxRepository using PostgreSQL
type PostgresOutboxRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOutboxRepository creates a new PostgresOutboxRepository
func NewPostgresOutboxRepository(pool *pgxpool.Pool) *PostgresOutboxRepository {
	return &PostgresOutboxRepository{pool: pool}
}

// CreateTx inserts an outbox message within an existing transaction
func (r *PostgresOutboxRepository) CreateTx(ctx context.Context, tx pgx.Tx, message *domain.OutboxMessage) error {
	query := `
		INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, recipient, status, retry_count, max_retries, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := tx.Exec(ctx, query,
		message.ID,
		message.AggregateType,
		message.AggregateID,
		message.EventType,
		message.Payload,
		message.Recipient,
		message.Status,
		message.RetryCount,
		message.MaxRetries,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox message: %w", err)
	}
	return nil
}

// GetPendingMessages fetches pending messages with row locks so that
// concurrent workers skip rows already claimed by another poll.
func (r *PostgresOutboxRepository) GetPendingMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	query := `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, recipient, status, retry_count, max_retries, last_error, created_at, processed_at, sent_at
		FROM outbox
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`
	rows, err := r.pool.Query(ctx, query, domain.OutboxStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending messages: %w", err)
	}
	defer rows.Close()

	return scanOutboxMessages(rows)
}

// GetFailedMessages fetches failed messages that still have retries left
func (r *PostgresOutboxRepository) GetFailedMessages(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	query := `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, recipient, status, retry_count, max_retries, last_error, created_at, processed_at, sent_at
		FROM outbox
		WHERE status = $1 AND retry_count < max_retries
		ORDER BY created_at ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`
	rows, err := r.pool.Query(ctx, query, domain.OutboxStatusFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get failed messages: %w", err)
	}
	defer rows.Close()

	return scanOutboxMessages(rows)
}

// MarkAsSent marks a message as delivered
func (r *PostgresOutboxRepository) MarkAsSent(ctx context.Context, id string) error {
	query := `
		UPDATE outbox
		SET status = $1, processed_at = NOW(), sent_at = NOW()
		WHERE id = $2
	`
	tag, err := r.pool.Exec(ctx, query, domain.OutboxStatusSent, id)
	if err != nil {
		return fmt.Errorf("failed to mark message as sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// MarkAsFailed records a delivery failure and increments the retry count
func (r *PostgresOutboxRepository) MarkAsFailed(ctx context.Context, id string, reason string) error {
	query := `
		UPDATE outbox
		SET status = $1, retry_count = retry_count + 1, last_error = $2, processed_at = NOW()
		WHERE id = $3
	`
	tag, err := r.pool.Exec(ctx, query, domain.OutboxStatusFailed, reason, id)
	if err != nil {
		return fmt.Errorf("failed to mark message as failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// DeleteSentBefore removes sent messages older than the cutoff
func (r *PostgresOutboxRepository) DeleteSentBefore(ctx context.Context, cutoffDays int) (int64, error) {
	query := `
		DELETE FROM outbox
		WHERE status = $1 AND sent_at < NOW() - ($2 || ' days')::INTERVAL
	`
	tag, err := r.pool.Exec(ctx, query, domain.OutboxStatusSent, cutoffDays)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sent messages: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanOutboxMessages(rows pgx.Rows) ([]*domain.OutboxMessage, error) {
	var messages []*domain.OutboxMessage
	for rows.Next() {
		msg := &domain.OutboxMessage{}
		// last_error is NULL until the first delivery failure
		var lastError *string
		err := rows.Scan(
			&msg.ID,
			&msg.AggregateType,
			&msg.AggregateID,
			&msg.EventType,
			&msg.Payload,
			&msg.Recipient,
			&msg.Status,
			&msg.RetryCount,
			&msg.MaxRetries,
			&lastError,
			&msg.CreatedAt,
			&msg.ProcessedAt,
			&msg.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox message: %w", err)
		}
		if lastError != nil {
			msg.LastError = *lastError
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outbox messages: %w", err)
	}
	return messages, nil
}

// Ensure PostgresOutboxRepository implements OutboxRepository
var _ OutboxRepository = (*PostgresOutboxRepository)(nil)
