package service

import (
	"log"

	gomail "gopkg.in/gomail.v2"

	"listrikku_backend/internals/configs"
)

// SendEmail delivers one plain-text email through the configured SMTP
// account. Returns without error when SMTP is not configured.
func SendEmail(to, subject, body string) error {
	cfg := configs.SMTP
	if cfg.Host == "" || to == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("[MAIL] send to %s failed: %v", to, err)
		return err
	}
	return nil
}
