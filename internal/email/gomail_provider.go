package email

import (
	"fmt"

	"cargolink_backend/internal/config"
	"cargolink_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// GomailProvider отправляет письма через SMTP (gomail)
type GomailProvider struct {
	cfg *config.Config
}

func NewGomailProvider(cfg *config.Config) (*GomailProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid smtp port: %d", cfg.Email.SMTPPort)
	}
	return &GomailProvider{cfg: cfg}, nil
}

func (p *GomailProvider) send(to []string, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to...)
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

func (p *GomailProvider) SendModerationDecision(to string, listingTitle string, decision models.ListingStatus) error {
	subject, body := moderationDecisionTemplate(listingTitle, decision)
	return p.send([]string{to}, subject, body)
}

func (p *GomailProvider) SendPendingReminder(to []string, pendingCount int64) error {
	if len(to) == 0 {
		return nil
	}
	subject, body := pendingReminderTemplate(pendingCount)
	return p.send(to, subject, body)
}

func (p *GomailProvider) Close() error {
	// gomail dials per-send, закрывать нечего
	return nil
}
