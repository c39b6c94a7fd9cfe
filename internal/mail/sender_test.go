package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dptravels/internal/config"
)

func TestNewSenderSelectsProvider(t *testing.T) {
	s, err := NewSender(&config.Config{MailProvider: config.ProviderSendGrid, SendGridAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &SendGridSender{}, s)

	s, err = NewSender(&config.Config{MailProvider: config.ProviderSMTP, SMTPHost: "mail.example.com", SMTPPort: 587})
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	s, err = NewSender(&config.Config{
		MailProvider:      config.ProviderGmail,
		GmailUser:         "u@gmail.com",
		GmailClientID:     "id",
		GmailClientSecret: "secret",
		GmailRefreshToken: "token",
	})
	require.NoError(t, err)
	assert.IsType(t, &GmailSender{}, s)
}

func TestNewSenderRejectsUnknownProvider(t *testing.T) {
	_, err := NewSender(&config.Config{MailProvider: "pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pigeon")
}

func TestNewSenderRequiresCredentials(t *testing.T) {
	_, err := NewSender(&config.Config{MailProvider: config.ProviderSendGrid})
	require.Error(t, err)

	_, err = NewSender(&config.Config{MailProvider: config.ProviderSMTP})
	require.Error(t, err)

	_, err = NewSender(&config.Config{MailProvider: config.ProviderGmail, GmailUser: "u@gmail.com"})
	require.Error(t, err)
}
