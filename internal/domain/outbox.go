package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the status of an outbox message
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// IsValid checks if the status is a valid OutboxStatus
func (s OutboxStatus) IsValid() bool {
	switch s {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return true
	}
	return false
}

// String returns the string representation of OutboxStatus
func (s OutboxStatus) String() string {
	return string(s)
}

// Event types written to the outbox
const (
	EventTypeBookingConfirmed = "booking.confirmed"
)

// OutboxMessage is a notification recorded in the same transaction as the
// state change it announces. A worker delivers pending messages out of band,
// so the booking commit and mail delivery have independent failure domains.
type OutboxMessage struct {
	ID            string       `json:"id"`
	AggregateType string       `json:"aggregate_type"` // e.g. "booking"
	AggregateID   string       `json:"aggregate_id"`
	EventType     string       `json:"event_type"`
	Payload       []byte       `json:"payload"`
	Recipient     string       `json:"recipient"` // destination email address
	Status        OutboxStatus `json:"status"`
	RetryCount    int          `json:"retry_count"`
	MaxRetries    int          `json:"max_retries"`
	LastError     string       `json:"last_error,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ProcessedAt   *time.Time   `json:"processed_at,omitempty"`
	SentAt        *time.Time   `json:"sent_at,omitempty"`
}

// BookingConfirmation is the payload of a booking.confirmed outbox message
type BookingConfirmation struct {
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
	Location   string    `json:"location"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
}

// NewBookingConfirmationMessage creates an outbox message announcing a
// successful booking, addressed to the booking user
func NewBookingConfirmationMessage(event *Event, user *User) (*OutboxMessage, error) {
	payload, err := json.Marshal(&BookingConfirmation{
		EventID:    event.ID,
		EventTitle: event.Title,
		EventDate:  event.Date,
		Location:   event.Location,
		Username:   user.Username,
		Email:      user.Email,
	})
	if err != nil {
		return nil, err
	}

	return &OutboxMessage{
		ID:            uuid.New().String(),
		AggregateType: "booking",
		AggregateID:   event.ID,
		EventType:     EventTypeBookingConfirmed,
		Payload:       payload,
		Recipient:     user.Email,
		Status:        OutboxStatusPending,
		MaxRetries:    5,
		CreatedAt:     time.Now(),
	}, nil
}

// CanRetry checks if the message can be retried
func (m *OutboxMessage) CanRetry() bool {
	return m.Status == OutboxStatusFailed && m.RetryCount < m.MaxRetries
}

// MarkAsSent marks the message as successfully delivered
func (m *OutboxMessage) MarkAsSent() {
	now := time.Now()
	m.Status = OutboxStatusSent
	m.SentAt = &now
	m.ProcessedAt = &now
}

// MarkAsFailed marks the message as failed
func (m *OutboxMessage) MarkAsFailed(err string) {
	now := time.Now()
	m.Status = OutboxStatusFailed
	m.LastError = err
	m.RetryCount++
	m.ProcessedAt = &now
}

// GetPayload unmarshals the payload into the given value
func (m *OutboxMessage) GetPayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}
