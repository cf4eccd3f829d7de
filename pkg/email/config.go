package email

import (
	"time"

	"github.com/Alijeyrad/optima_web/config"
)

const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
	ProviderLog      = "log"
)

// Config holds email service configuration
type Config struct {
	Enabled  bool
	Provider string
	From     string
	FromName string

	// SMTP settings
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int

	SendGridAPIKey string
	SESRegion      string
}

// DefaultConfig returns sensible defaults for email configuration
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		Provider:           ProviderLog,
		FromName:           "Website Contact",
		SMTPHost:           "smtp.gmail.com",
		SMTPPort:           587,
		SMTPTimeoutSeconds: 30,
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	return Config{
		Enabled:            c.Enabled,
		Provider:           c.Provider,
		From:               c.From,
		FromName:           c.FromName,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           c.SMTP.Port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
		SendGridAPIKey:     c.SendGrid.APIKey,
		SESRegion:          c.SES.Region,
	}
}
