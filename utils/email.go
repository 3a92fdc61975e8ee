package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// SendEmail delivers an HTML email through the configured SMTP server. With
// no SMTP_HOST set the send is stubbed: the message is logged and dropped.
func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("Error loading .env file. Using environment variables directly.")
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Info().Str("to", to).Str("subject", subject).Msg("SMTP not configured, email send stubbed")
		return nil
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		host,
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendSMS is a stub for the SMS gateway: invites and verification codes are
// logged instead of delivered.
func SendSMS(phone, message string) error {
	log.Info().Str("phone", phone).Str("message", message).Msg("SMS gateway stubbed")
	return nil
}
