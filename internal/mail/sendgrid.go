package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"dptravels/internal/entities"
)

// SendGridSender delivers notifications through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

func (s *SendGridSender) Send(ctx context.Context, n entities.Notification) error {
	from := sgmail.NewEmail(n.FromName, n.FromEmail)
	to := sgmail.NewEmail("", n.To)
	message := sgmail.NewSingleEmail(from, n.Subject, to, n.PlainBody, n.HTMLBody)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
