package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Alijeyrad/optima_web/pkg/constants"
)

func ReadConfig(configPath string) (*Config, error) {
	// A .env next to the config file is optional; real env vars win over it.
	_ = godotenv.Load(filepath.Join(configPath, ".env"))

	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. OPTIMA_EMAIL_SMTP_HOST overrides email.smtp.host
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// The config file is optional in container deployments.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key so env overrides work without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 15)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.domain", "localhost")
	v.SetDefault("server.cors.enabled", false)
	v.SetDefault("server.cors.allow_origins", []string{})

	v.SetDefault("site.brand", "OPTIMA")
	v.SetDefault("site.title", "OPTIMA - AI-Powered Logistics & Transportation Management | Reduce Costs by 30%")
	v.SetDefault("site.description", "Transform your logistics with OPTIMA's AI-powered platform. Automate vehicle induction to proof of delivery, reduce costs by 30%, achieve 100% paperless workflows. Trusted by 500+ enterprises.")
	v.SetDefault("site.og_title", "OPTIMA - AI-Powered Logistics & Transportation Management")
	v.SetDefault("site.og_description", "Transform your logistics with AI automation. Reduce costs by 30%, achieve 100% paperless workflows, and get real-time visibility across your entire supply chain.")
	v.SetDefault("site.contact_email", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 20)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.provider", "log")
	v.SetDefault("email.from", "")
	v.SetDefault("email.from_name", "Website Contact")
	v.SetDefault("email.sales_to", "")
	v.SetDefault("email.smtp.host", "smtp.gmail.com")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.use_tls", false)
	v.SetDefault("email.smtp.timeout_seconds", 30)
	v.SetDefault("email.sendgrid.api_key", "")
	v.SetDefault("email.ses.region", "")

	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.subject", "optima.demo.requested")

	v.SetDefault("submit.endpoint", "http://localhost:8080/api/v1/demo-requests")
	v.SetDefault("submit.timeout_seconds", 0)

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", constants.ServiceName)
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.otlp_endpoint", "")
	v.SetDefault("observability.tracing.otlp_insecure", false)
	v.SetDefault("observability.tracing.sampling_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", false)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("logging.output.file.enabled", false)
	v.SetDefault("logging.output.file.path", "logs/optima.log")
	v.SetDefault("logging.output.file.max_size_mb", 50)
	v.SetDefault("logging.output.file.max_backups", 5)
	v.SetDefault("logging.output.file.max_age_days", 28)
	v.SetDefault("logging.output.file.compress", true)
	v.SetDefault("logging.output.loki.enabled", false)
	v.SetDefault("logging.output.loki.endpoint", "")
}
