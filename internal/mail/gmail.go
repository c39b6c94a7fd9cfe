package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"dptravels/internal/entities"
)

const gmailSMTPAddr = "smtp.gmail.com:587"

// GmailSender delivers notifications through Gmail's SMTP endpoint using an
// OAuth2 refresh token instead of an app password. Access tokens are minted
// (and cached) by the oauth2 token source.
type GmailSender struct {
	user   string
	source oauth2.TokenSource
}

func NewGmailSender(user, clientID, clientSecret, refreshToken string) *GmailSender {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://mail.google.com/"},
	}
	token := &oauth2.Token{RefreshToken: refreshToken}
	return &GmailSender{
		user:   user,
		source: conf.TokenSource(context.Background(), token),
	}
}

func (s *GmailSender) Send(ctx context.Context, n entities.Notification) error {
	token, err := s.source.Token()
	if err != nil {
		return fmt.Errorf("failed to refresh gmail access token: %w", err)
	}

	auth := &xoauth2Auth{user: s.user, accessToken: token.AccessToken}
	msg := buildMessage(n)
	if err := smtp.SendMail(gmailSMTPAddr, auth, n.FromEmail, []string{n.To}, msg); err != nil {
		return fmt.Errorf("failed to send email via gmail: %w", err)
	}
	return nil
}

// Verify mints an access token without sending anything.
func (s *GmailSender) Verify(ctx context.Context) error {
	if _, err := s.source.Token(); err != nil {
		return fmt.Errorf("gmail OAuth2 credentials rejected: %w", err)
	}
	return nil
}

// xoauth2Auth implements the SASL XOAUTH2 mechanism Gmail expects.
type xoauth2Auth struct {
	user        string
	accessToken string
}

func (a *xoauth2Auth) Start(info *smtp.ServerInfo) (string, []byte, error) {
	if !info.TLS {
		return "", nil, fmt.Errorf("XOAUTH2 requires a TLS connection")
	}
	resp := []byte("user=" + a.user + "\x01auth=Bearer " + a.accessToken + "\x01\x01")
	return "XOAUTH2", resp, nil
}

func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// Server sent an error challenge; reply empty so it fails the auth
		// exchange instead of hanging.
		return []byte(""), nil
	}
	return nil, nil
}
