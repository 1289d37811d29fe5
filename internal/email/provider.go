package email

import (
	"internship_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Provider sends a single HTML email.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopProvider is used when SMTP is not configured (dev, tests).
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error { return nil }
