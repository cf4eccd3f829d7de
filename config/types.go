package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Site          SiteConfig          `mapstructure:"site"`
	Redis         RedisConfig         `mapstructure:"redis"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Email         EmailConfig         `mapstructure:"email"`
	Nats          NatsConfig          `mapstructure:"nats"`
	Submit        SubmitConfig        `mapstructure:"submit"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type NatsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url" yaml:"url"`
	Subject string `mapstructure:"subject"`
}

type RedisConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	TimeoutSeconds int           `mapstructure:"timeout_seconds"`
	Environment    string        `mapstructure:"environment"`
	Domain         string        `mapstructure:"domain"`
	CORS           CORSConfig    `mapstructure:"cors"`
	Headers        HeadersConfig `mapstructure:"headers"`
}

type HeadersConfig struct {
	XSSProtection      string `mapstructure:"xss_protection"`
	ContentTypeNosniff string `mapstructure:"content_type_nosniff"`
	XFrameOptions      string `mapstructure:"x_frame_options"`
	ReferrerPolicy     string `mapstructure:"referrer_policy"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAgeSeconds    int      `mapstructure:"max_age_seconds"`
}

// SiteConfig holds the page metadata rendered into the landing page head.
type SiteConfig struct {
	Brand         string `mapstructure:"brand"`
	Title         string `mapstructure:"title"`
	Description   string `mapstructure:"description"`
	OGTitle       string `mapstructure:"og_title"`
	OGDescription string `mapstructure:"og_description"`
	ContactEmail  string `mapstructure:"contact_email"`
}

type EmailConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Provider is one of smtp, sendgrid, ses, log.
	Provider string `mapstructure:"provider"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	// SalesTo receives contact messages and demo requests.
	SalesTo  string         `mapstructure:"sales_to"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SendGrid SendGridConfig `mapstructure:"sendgrid"`
	SES      SESConfig      `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SendGridConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type SESConfig struct {
	Region string `mapstructure:"region"`
}

// SubmitConfig configures the submit CLI.
type SubmitConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Email.Enabled {
		if strings.TrimSpace(c.Email.From) == "" {
			return fmt.Errorf("email.from is required when email is enabled")
		}
		if strings.TrimSpace(c.Email.SalesTo) == "" {
			return fmt.Errorf("email.sales_to is required when email is enabled")
		}
		switch c.Email.Provider {
		case "smtp":
			if c.Email.SMTP.Host == "" {
				return fmt.Errorf("email.smtp.host is required for the smtp provider")
			}
		case "sendgrid":
			if c.Email.SendGrid.APIKey == "" {
				return fmt.Errorf("email.sendgrid.api_key is required for the sendgrid provider")
			}
		case "ses":
			if c.Email.SES.Region == "" {
				return fmt.Errorf("email.ses.region is required for the ses provider")
			}
		case "log":
		default:
			return fmt.Errorf("unknown email.provider %q", c.Email.Provider)
		}
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	if c.Nats.Enabled && c.Nats.URL == "" {
		return fmt.Errorf("nats.url is required when nats is enabled")
	}

	return nil
}
