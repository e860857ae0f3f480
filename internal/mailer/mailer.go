package mailer

import (
	"stayadmin-service/pkg/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends admin-originated notifications (proof rejections, support
// replies) over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a mailer from SMTP configuration
func New(cfg *config.MailConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a plain-text message to a single recipient
func (m *Mailer) Send(to, subject, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	return m.dialer.DialAndSend(message)
}
