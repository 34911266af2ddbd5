package services

import (
	"log"

	"github.com/justsurfingit/jobjournal/internal/metrics"
	"gopkg.in/gomail.v2"
)

// Mailer sends a plain-text mail. The interface keeps handlers testable
// without a real SMTP server.
type Mailer interface {
	Send(to, subject, body string) error
}

type MailService struct {
	host string
	port int
	user string
	pass string
}

func NewMailService(host string, port int, user, pass string) *MailService {
	return &MailService{host: host, port: port, user: user, pass: pass}
}

func (s *MailService) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	return d.DialAndSend(m)
}

// Dispatch sends the mail in the background. Notification mail is
// best-effort: the primary operation has already committed, so a failure
// here is logged and never surfaced to the caller.
func Dispatch(m Mailer, to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			metrics.MailSends.WithLabelValues("error").Inc()
			log.Printf("mail send failed (non-fatal): %v", err)
			return
		}
		metrics.MailSends.WithLabelValues("ok").Inc()
	}()
}
