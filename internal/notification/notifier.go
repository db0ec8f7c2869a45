package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// Notifier delivers booking confirmations to users
type Notifier interface {
	// SendBookingConfirmation sends a confirmation for the booking
	// described by the payload to the recipient address.
	SendBookingConfirmation(ctx context.Context, recipient string, confirmation *domain.BookingConfirmation) error
}

// confirmationSubject builds the confirmation email subject line
func confirmationSubject(confirmation *domain.BookingConfirmation) string {
	return fmt.Sprintf("Seat Booked Successfully for %s", confirmation.EventTitle)
}

// confirmationBody builds the confirmation email body
func confirmationBody(confirmation *domain.BookingConfirmation) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your seat for the event %q has been successfully booked.\n\n"+
			"Event Details:\n"+
			"Date: %s\n"+
			"Location: %s\n\n"+
			"Thank you for booking with us!\n\n"+
			"Best regards,\nEvent Booking Team",
		confirmation.Username,
		confirmation.EventTitle,
		confirmation.EventDate.Format(time.RFC1123),
		confirmation.Location,
	)
}
