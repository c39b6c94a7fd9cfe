package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"dptravels/internal/entities"
)

// SMTPSender delivers notifications through a plain SMTP relay with
// PLAIN authentication.
type SMTPSender struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPSender(host string, port int, user, pass string) *SMTPSender {
	return &SMTPSender{host: host, port: port, user: user, pass: pass}
}

func (s *SMTPSender) Send(ctx context.Context, n entities.Notification) error {
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	msg := buildMessage(n)
	if err := smtp.SendMail(addr, auth, n.FromEmail, []string{n.To}, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// Verify dials the relay and quits, confirming the host is reachable.
func (s *SMTPSender) Verify(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("SMTP relay unreachable at %s: %w", addr, err)
	}
	return c.Quit()
}

// buildMessage assembles a single-part HTML MIME message.
func buildMessage(n entities.Notification) []byte {
	headers := fmt.Sprintf(
		"From: %q <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		n.FromName, n.FromEmail, n.To, n.Subject,
	)
	return []byte(headers + n.HTMLBody)
}
