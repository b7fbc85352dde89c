// Package mailer delivers one-time passwords over SMTP. It is the only
// outbound channel in the system; a failed send is terminal for the
// request and never retried server-side.
package mailer

import (
	"fmt"

	"github.com/prasetya/catatan/internal/pkg/apperrors"
	"github.com/prasetya/catatan/internal/pkg/models"
	"gopkg.in/gomail.v2"
)

const otpSubject = "Your OTP for Catatan"

// Mailer dispatches an OTP code to a destination address.
type Mailer interface {
	SendOTP(to, code string) error
}

// SMTPMailer sends OTP emails through a configured SMTP server.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg models.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendOTP sends the code to the destination address with the fixed
// subject/body template.
func (m *SMTPMailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", otpSubject)
	msg.SetBody("text/html", fmt.Sprintf("<p>Your OTP is: <strong>%s</strong></p>", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return apperrors.NewDelivery(err)
	}
	return nil
}
