package utils

import (
	"fmt"
	"log"
	"strconv"

	"goblog/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends password reset mail over SMTP. With no SMTP host configured it
// logs the reset link instead, which is what you want in development.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	sender   string
}

func NewMailer(cfg *config.Config) *Mailer {
	port, err := strconv.Atoi(cfg.MailPort)
	if err != nil {
		port = 587
	}
	return &Mailer{
		host:     cfg.MailHost,
		port:     port,
		username: cfg.MailUser,
		password: cfg.MailPassword,
		sender:   cfg.MailSender,
	}
}

func (m *Mailer) SendReset(to, resetURL string) error {
	body := fmt.Sprintf(`To reset your password, visit the following link:
%s

If you did not make this request then simply ignore this email and no changes will be made.
`, resetURL)

	if m.host == "" {
		log.Printf("mail disabled, reset link for %s: %s", to, resetURL)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
