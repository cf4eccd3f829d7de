package email

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the logger instead of delivering them.
// It is the development default.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, m Message) error {
	if len(cleanAddrs(m.To)) == 0 {
		return ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	s.logger.InfoContext(ctx, "email not sent (log provider)",
		"to", m.To,
		"reply_to", m.ReplyTo,
		"subject", m.Subject,
		"text", m.TextBody,
	)
	return nil
}
