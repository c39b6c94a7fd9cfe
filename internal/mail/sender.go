package mail

import (
	"context"
	"fmt"

	"dptravels/internal/config"
	"dptravels/internal/entities"
)

// Sender hands a composed notification to an external delivery mechanism.
// Implementations: SendGrid API, plain SMTP, Gmail SMTP with OAuth2.
type Sender interface {
	Send(ctx context.Context, n entities.Notification) error
}

// Verifier is implemented by senders that can cheaply check their
// configuration at startup, like the original transporter verify step.
type Verifier interface {
	Verify(ctx context.Context) error
}

// NewSender builds the sender selected by MAIL_PROVIDER.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case config.ProviderSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SENDGRID_API_KEY not set")
		}
		return NewSendGridSender(cfg.SendGridAPIKey), nil
	case config.ProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST not set")
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass), nil
	case config.ProviderGmail:
		if cfg.GmailUser == "" || cfg.GmailClientID == "" || cfg.GmailClientSecret == "" || cfg.GmailRefreshToken == "" {
			return nil, fmt.Errorf("gmail OAuth2 credentials not fully configured")
		}
		return NewGmailSender(cfg.GmailUser, cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}
