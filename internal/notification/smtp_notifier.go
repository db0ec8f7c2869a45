package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// SMTPConfig holds SMTP delivery configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Addr returns the SMTP server address
func (c *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// sendFunc matches smtp.SendMail, swapped out in tests
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier delivers booking confirmations over SMTP
type SMTPNotifier struct {
	config *SMTPConfig
	send   sendFunc
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(config *SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		send:   smtp.SendMail,
	}
}

// SendBookingConfirmation sends a confirmation email to the recipient
func (n *SMTPNotifier) SendBookingConfirmation(ctx context.Context, recipient string, confirmation *domain.BookingConfirmation) error {
	var auth smtp.Auth
	if n.config.Username != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}

	msg := buildMessage(n.config.From, recipient, confirmationSubject(confirmation), confirmationBody(confirmation))

	if err := n.send(n.config.Addr(), auth, n.config.From, []string{recipient}, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// buildMessage assembles an RFC 5322 message with CRLF line endings
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// Ensure SMTPNotifier implements Notifier
var _ Notifier = (*SMTPNotifier)(nil)
