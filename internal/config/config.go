package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mail provider names accepted in MAIL_PROVIDER.
const (
	ProviderSendGrid = "sendgrid"
	ProviderSMTP     = "smtp"
	ProviderGmail    = "gmail"
)

// Config holds every knob the server reads from the process environment.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	PublicDir      string   `env:"PUBLIC_DIR" envDefault:"public"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`

	MailProvider string `env:"MAIL_PROVIDER" envDefault:"sendgrid"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	GmailUser         string `env:"GMAIL_USER"`
	GmailClientID     string `env:"GMAIL_CLIENT_ID"`
	GmailClientSecret string `env:"GMAIL_CLIENT_SECRET"`
	GmailRefreshToken string `env:"GMAIL_REFRESH_TOKEN"`

	SenderEmail   string `env:"SENDER_EMAIL"`
	SenderName    string `env:"SENDER_NAME" envDefault:"DP Travels"`
	ReceiverEmail string `env:"RECEIVER_EMAIL"`

	MailMaxAttempts int           `env:"MAIL_MAX_ATTEMPTS" envDefault:"2"`
	MailRetryDelay  time.Duration `env:"MAIL_RETRY_DELAY" envDefault:"2s"`

	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`
	BusinessPhone    string `env:"BUSINESS_PHONE"`

	StatsEnabled  bool   `env:"STATS_ENABLED" envDefault:"false"`
	StatsSchedule string `env:"STATS_SCHEDULE" envDefault:"0 20 * * *"`
}

// Load reads the optional .env file and parses the environment into a Config.
// RECEIVER_EMAIL falls back to SENDER_EMAIL so a single-inbox setup needs one
// variable, not two.
func Load() (*Config, error) {
	// The .env file is optional; a missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.ReceiverEmail == "" {
		cfg.ReceiverEmail = cfg.SenderEmail
	}
	if cfg.MailMaxAttempts < 1 {
		cfg.MailMaxAttempts = 1
	}

	return cfg, nil
}
