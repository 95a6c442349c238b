// Package mailer delivers notification emails over SMTP
package mailer

import (
	"fmt"

	"github.com/shopapp/backend/internal/config"
	"gopkg.in/mail.v2"
)

// Mailer sends emails through a configured SMTP server
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// New creates a mailer from SMTP configuration
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send delivers a plain-text message to the recipient
func (m *Mailer) Send(to, subject, message string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	d := mail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
