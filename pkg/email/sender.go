package email

import (
	"context"
	"log/slog"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/Alijeyrad/optima_web/config"
)

// Sender delivers one message. Implementations are swappable by email.provider.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// NewFromCentral creates a sender from central config
func NewFromCentral(ctx context.Context, cfg config.EmailConfig, logger *slog.Logger) (Sender, error) {
	return New(ctx, FromCentralConfig(cfg), logger)
}

// New picks the sender for cfg.Provider. A disabled config yields a sender
// that refuses every message with ErrDisabled.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (Sender, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Enabled {
		return disabledSender{}, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderSMTP:
		return NewSMTPSender(cfg), nil
	case ProviderSendGrid:
		return NewSendGridSender(cfg, logger), nil
	case ProviderSES:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
		if err != nil {
			return nil, ErrSend{Provider: ProviderSES, Err: err}
		}
		return NewSESSender(sesv2.NewFromConfig(awsCfg), cfg, logger), nil
	case ProviderLog, "":
		return NewLogSender(logger), nil
	default:
		return nil, ErrUnknownProvider{Provider: cfg.Provider}
	}
}

type disabledSender struct{}

func (disabledSender) Send(context.Context, Message) error { return ErrDisabled{} }

// validate enforces what every provider needs: a sender address, at least one
// recipient, a subject and a body.
func validate(from string, m Message) error {
	if strings.TrimSpace(from) == "" {
		return ErrInvalidMessage{Reason: "from is required"}
	}
	if len(cleanAddrs(m.To)) == 0 {
		return ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return ErrInvalidMessage{Reason: "subject is required"}
	}
	if strings.TrimSpace(m.TextBody) == "" && strings.TrimSpace(m.HTMLBody) == "" {
		return ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}
	return nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
