// Package notifier adapts delivery backends to the reminder engine's
// Notifier contract. The backend is chosen at startup from configuration.
package notifier

import (
	"github.com/aliskhannn/medication-reminder/internal/model"
)

type emailSender interface {
	Send(to, subject, body string) error
}

// Email sends reminders directly over SMTP.
type Email struct {
	sender emailSender
}

// NewEmail creates a direct SMTP notifier.
func NewEmail(sender emailSender) *Email {
	return &Email{sender: sender}
}

// Notify delivers one reminder to the user's email address.
func (n *Email) Notify(user model.User, subject, body string) error {
	return n.sender.Send(user.Email, subject, body)
}
