package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends through the SendGrid v3 mail API.
type SendGridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
	logger   *slog.Logger
}

func NewSendGridSender(cfg Config, logger *slog.Logger) *SendGridSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SendGridSender{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, m Message) error {
	if err := validate(s.from, m); err != nil {
		return err
	}

	response, err := s.client.SendWithContext(ctx, sendGridMessage(s.from, s.fromName, m))
	if err != nil {
		return ErrSend{Provider: ProviderSendGrid, Err: err}
	}
	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			"status", response.StatusCode,
			"body", response.Body,
		)
		return ErrSend{Provider: ProviderSendGrid, Err: fmt.Errorf("status %d", response.StatusCode)}
	}

	s.logger.Debug("email sent via sendgrid", "subject", m.Subject, "status", response.StatusCode)
	return nil
}

func sendGridMessage(from, fromName string, m Message) *mail.SGMailV3 {
	msg := mail.NewV3Mail()
	msg.SetFrom(mail.NewEmail(fromName, strings.TrimSpace(from)))
	msg.Subject = strings.TrimSpace(m.Subject)

	p := mail.NewPersonalization()
	for _, to := range cleanAddrs(m.To) {
		p.AddTos(mail.NewEmail("", to))
	}
	for _, cc := range cleanAddrs(m.CC) {
		p.AddCCs(mail.NewEmail("", cc))
	}
	for _, bcc := range cleanAddrs(m.BCC) {
		p.AddBCCs(mail.NewEmail("", bcc))
	}
	for k, v := range m.Headers {
		p.SetHeader(k, v)
	}
	msg.AddPersonalizations(p)

	if r := strings.TrimSpace(m.ReplyTo); r != "" {
		msg.SetReplyTo(mail.NewEmail("", r))
	}

	// SendGrid requires text/plain to precede text/html.
	if strings.TrimSpace(m.TextBody) != "" {
		msg.AddContent(mail.NewContent("text/plain", m.TextBody))
	}
	if strings.TrimSpace(m.HTMLBody) != "" {
		msg.AddContent(mail.NewContent("text/html", m.HTMLBody))
	}
	return msg
}
