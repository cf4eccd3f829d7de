package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the subset of the SES v2 client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends through AWS SES v2.
type SESSender struct {
	client   SESAPI
	from     string
	fromName string
	logger   *slog.Logger
}

func NewSESSender(client SESAPI, cfg Config, logger *slog.Logger) *SESSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SESSender{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}
}

func (s *SESSender) Send(ctx context.Context, m Message) error {
	if err := validate(s.from, m); err != nil {
		return err
	}

	out, err := s.client.SendEmail(ctx, sesInput(s.from, s.fromName, m))
	if err != nil {
		return ErrSend{Provider: ProviderSES, Err: err}
	}

	s.logger.Debug("email sent via ses", "subject", m.Subject, "message_id", aws.ToString(out.MessageId))
	return nil
}

func sesInput(from, fromName string, m Message) *sesv2.SendEmailInput {
	fromAddress := strings.TrimSpace(from)
	if name := strings.TrimSpace(fromName); name != "" {
		fromAddress = fmt.Sprintf("%s <%s>", name, fromAddress)
	}

	body := &types.Body{}
	if strings.TrimSpace(m.TextBody) != "" {
		body.Text = &types.Content{Data: aws.String(m.TextBody), Charset: aws.String("UTF-8")}
	}
	if strings.TrimSpace(m.HTMLBody) != "" {
		body.Html = &types.Content{Data: aws.String(m.HTMLBody), Charset: aws.String("UTF-8")}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses:  cleanAddrs(m.To),
			CcAddresses:  cleanAddrs(m.CC),
			BccAddresses: cleanAddrs(m.BCC),
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(strings.TrimSpace(m.Subject)), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	}
	if r := strings.TrimSpace(m.ReplyTo); r != "" {
		input.ReplyToAddresses = []string{r}
	}
	return input
}

var _ Sender = (*SESSender)(nil)
