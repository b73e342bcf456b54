// Package email provides a simple SMTP client for sending reminder emails.
package email

import (
	"gopkg.in/mail.v2"
)

// Client sends plain-text emails over SMTP.
type Client struct {
	dialer *mail.Dialer
	from   string
}

// NewClient creates a new email Client for the given SMTP account.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		dialer: mail.NewDialer(smtpHost, smtpPort, username, password),
		from:   from,
	}
}

// Send sends a plain-text email to the given recipient.
func (c *Client) Send(to, subject, body string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	return c.dialer.DialAndSend(message)
}
