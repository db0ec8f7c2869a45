package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
	"github.com/thanarat-p/eventbook/internal/notification"
	"github.com/thanarat-p/eventbook/internal/repository"
	"github.com/thanarat-p/eventbook/pkg/logger"
	"go.uber.org/zap"
)

// NotificationWorkerConfig contains configuration for the notification worker
type NotificationWorkerConfig struct {
	// PollInterval is the interval between polling for pending messages
	PollInterval time.Duration
	// BatchSize is the number of messages to fetch in each poll
	BatchSize int
	// RetryInterval is the interval between retrying failed messages
	RetryInterval time.Duration
	// CleanupInterval is the interval between cleanup of delivered messages
	CleanupInterval time.Duration
	// CleanupRetentionDays is the number of days to retain delivered messages
	CleanupRetentionDays int
}

// DefaultNotificationWorkerConfig returns default configuration
func DefaultNotificationWorkerConfig() *NotificationWorkerConfig {
	return &NotificationWorkerConfig{
		PollInterval:         2 * time.Second,
		BatchSize:            50,
		RetryInterval:        30 * time.Second,
		CleanupInterval:      1 * time.Hour,
		CleanupRetentionDays: 7,
	}
}

// NotificationWorker polls the outbox table and delivers booking
// confirmation emails. Delivery runs outside the booking transaction, so
// a slow or failing mail server never blocks a booking.
type NotificationWorker struct {
	outboxRepo repository.OutboxRepository
	notifier   notification.Notifier
	config     *NotificationWorkerConfig
	log        *logger.Logger
	stopCh     chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	running    bool
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(
	outboxRepo repository.OutboxRepository,
	notifier notification.Notifier,
	config *NotificationWorkerConfig,
) *NotificationWorker {
	if config == nil {
		config = DefaultNotificationWorkerConfig()
	}

	return &NotificationWorker{
		outboxRepo: outboxRepo,
		notifier:   notifier,
		config:     config,
		log:        logger.Get(),
		stopCh:     make(chan struct{}),
	}
}

// Start starts the notification worker
func (w *NotificationWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("notification worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.log.Info("Starting notification worker")

	w.wg.Add(1)
	go w.pollPendingMessages(ctx)

	w.wg.Add(1)
	go w.retryFailedMessages(ctx)

	w.wg.Add(1)
	go w.cleanupOldMessages(ctx)

	return nil
}

// Stop stops the notification worker
func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	w.log.Info("Stopping notification worker")
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("Notification worker stopped")
}

// pollPendingMessages polls for pending messages and delivers them
func (w *NotificationWorker) pollPendingMessages(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.processPendingMessages(ctx)
		}
	}
}

// processPendingMessages fetches and delivers pending messages
func (w *NotificationWorker) processPendingMessages(ctx context.Context) {
	messages, err := w.outboxRepo.GetPendingMessages(ctx, w.config.BatchSize)
	if err != nil {
		w.log.Error("failed to get pending messages", zap.Error(err))
		return
	}

	for _, msg := range messages {
		w.deliver(ctx, msg)
	}
}

// retryFailedMessages retries failed messages that still have retries left
func (w *NotificationWorker) retryFailedMessages(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.RetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.processFailedMessages(ctx)
		}
	}
}

// processFailedMessages fetches and retries failed messages
func (w *NotificationWorker) processFailedMessages(ctx context.Context) {
	messages, err := w.outboxRepo.GetFailedMessages(ctx, w.config.BatchSize)
	if err != nil {
		w.log.Error("failed to get failed messages", zap.Error(err))
		return
	}

	for _, msg := range messages {
		w.log.Info("retrying message delivery",
			zap.String("message_id", msg.ID),
			zap.Int("attempt", msg.RetryCount+1),
			zap.Int("max_retries", msg.MaxRetries))
		w.deliver(ctx, msg)
	}
}

// cleanupOldMessages deletes delivered messages past the retention window
func (w *NotificationWorker) cleanupOldMessages(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			deleted, err := w.outboxRepo.DeleteSentBefore(ctx, w.config.CleanupRetentionDays)
			if err != nil {
				w.log.Error("failed to cleanup old messages", zap.Error(err))
			} else if deleted > 0 {
				w.log.Info("cleaned up delivered messages", zap.Int64("deleted", deleted))
			}
		}
	}
}

// deliver sends the confirmation and records the outcome
func (w *NotificationWorker) deliver(ctx context.Context, msg *domain.OutboxMessage) {
	if err := w.sendMessage(ctx, msg); err != nil {
		w.log.Error("failed to deliver message",
			zap.String("message_id", msg.ID),
			zap.String("recipient", msg.Recipient),
			zap.Error(err))
		if markErr := w.outboxRepo.MarkAsFailed(ctx, msg.ID, err.Error()); markErr != nil {
			w.log.Error("failed to mark message as failed", zap.String("message_id", msg.ID), zap.Error(markErr))
		}
		return
	}

	if markErr := w.outboxRepo.MarkAsSent(ctx, msg.ID); markErr != nil {
		w.log.Error("failed to mark message as sent", zap.String("message_id", msg.ID), zap.Error(markErr))
	}
}

// sendMessage dispatches a message by event type
func (w *NotificationWorker) sendMessage(ctx context.Context, msg *domain.OutboxMessage) error {
	switch msg.EventType {
	case domain.EventTypeBookingConfirmed:
		var confirmation domain.BookingConfirmation
		if err := msg.GetPayload(&confirmation); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		return w.notifier.SendBookingConfirmation(ctx, msg.Recipient, &confirmation)
	default:
		return fmt.Errorf("unknown event type: %s", msg.EventType)
	}
}
