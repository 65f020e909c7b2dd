package notifications

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// SMTPServiceImpl implements domain.MailService over a plain SMTP
// submission port (gmail-style host/port/user/pass).
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from string) domain.MailService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send implements domain.MailService. Without a configured username the
// message is logged instead of sent, which keeps local development working.
func (s *SMTPServiceImpl) Send(to, subject, body string) error {
	if s.dialer.Username == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	return nil
}
