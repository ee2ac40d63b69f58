package service

import (
	"errors"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends one plain-text email
type Mailer interface {
	Send(toName, toEmail, subject, body string) error
}

var defaultMailer Mailer

// InitMailer wires SendGrid when SENDGRID_API_KEY is set; without it mail
// is logged to stdout so local/dev keeps working.
func InitMailer() {
	key := os.Getenv("SENDGRID_API_KEY")
	if key == "" {
		log.Println("⚠️  SENDGRID_API_KEY not set, emails will be logged only")
		defaultMailer = consoleMailer{}
		return
	}
	defaultMailer = &sendgridMailer{
		client:    sendgrid.NewSendClient(key),
		fromName:  envOr("MAIL_FROM_NAME", "CoachDesk"),
		fromEmail: envOr("MAIL_FROM_EMAIL", "noreply@coachdesk.app"),
	}
	log.Println("✅ SendGrid mailer ready")
}

type sendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func (m *sendgridMailer) Send(toName, toEmail, subject, body string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.fromEmail),
		subject,
		mail.NewEmail(toName, toEmail),
		body,
		body,
	)
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return errors.New("sendgrid rejected the message: " + resp.Body)
	}
	return nil
}

type consoleMailer struct{}

func (consoleMailer) Send(toName, toEmail, subject, body string) error {
	log.Printf("[MAIL] to=%s <%s> subject=%q\n%s", toName, toEmail, subject, body)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
