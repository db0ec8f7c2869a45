package notification

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
)

func testConfirmation() *domain.BookingConfirmation {
	return &domain.BookingConfirmation{
		EventID:    "event-1",
		EventTitle: "Go Meetup",
		EventDate:  time.Date(2027, 3, 15, 19, 30, 0, 0, time.UTC),
		Location:   "Bangkok",
		Username:   "alice",
		Email:      "alice@example.com",
	}
}

func TestSMTPNotifier_SendBookingConfirmation(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	notifier := NewSMTPNotifier(&SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
	})
	notifier.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := notifier.SendBookingConfirmation(context.Background(), "alice@example.com", testConfirmation())
	if err != nil {
		t.Fatalf("SendBookingConfirmation() error = %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %v, want smtp.example.com:587", gotAddr)
	}
	if gotFrom != "noreply@example.com" {
		t.Errorf("from = %v, want noreply@example.com", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "alice@example.com" {
		t.Errorf("to = %v, want [alice@example.com]", gotTo)
	}

	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: Seat Booked Successfully for Go Meetup") {
		t.Errorf("message missing subject line:\n%s", msg)
	}
	if !strings.Contains(msg, "Hello alice,") {
		t.Errorf("message missing greeting:\n%s", msg)
	}
	if !strings.Contains(msg, "Location: Bangkok") {
		t.Errorf("message missing location:\n%s", msg)
	}
	if !strings.Contains(msg, `"Go Meetup" has been successfully booked`) {
		t.Errorf("message missing booking line:\n%s", msg)
	}
}

func TestSMTPNotifier_SendError(t *testing.T) {
	notifier := NewSMTPNotifier(&SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"})
	notifier.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return context.DeadlineExceeded
	}

	err := notifier.SendBookingConfirmation(context.Background(), "alice@example.com", testConfirmation())
	if err == nil {
		t.Fatal("SendBookingConfirmation() expected error")
	}
	if !strings.Contains(err.Error(), "failed to send confirmation email") {
		t.Errorf("SendBookingConfirmation() error = %v", err)
	}
}
