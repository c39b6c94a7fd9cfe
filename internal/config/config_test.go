package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "bookings@dptravels.in")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sendgrid", cfg.MailProvider)
	assert.Equal(t, 2, cfg.MailMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.MailRetryDelay)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
}

func TestReceiverFallsBackToSender(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "bookings@dptravels.in")
	t.Setenv("RECEIVER_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bookings@dptravels.in", cfg.ReceiverEmail)
}

func TestAllowedOriginsSplit(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://www.dptravels.in,https://dptravels.onrender.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.dptravels.in", "https://dptravels.onrender.com"}, cfg.AllowedOrigins)
}

func TestAttemptFloor(t *testing.T) {
	t.Setenv("MAIL_MAX_ATTEMPTS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MailMaxAttempts)
}
