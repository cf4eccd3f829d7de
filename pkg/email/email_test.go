package email

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() Message {
	return Message{
		To:       []string{" sales@optima.example ", ""},
		ReplyTo:  "jordan@example.com",
		Subject:  " New Contact Form Message ",
		TextBody: "hello",
		HTMLBody: "<p>hello</p>",
	}
}

func TestNew_SelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     any
	}{
		{ProviderSMTP, &SMTPSender{}},
		{ProviderSendGrid, &SendGridSender{}},
		{ProviderLog, &LogSender{}},
		{"", &LogSender{}},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Enabled = true
			cfg.Provider = tt.provider
			cfg.From = "noreply@optima.example"
			cfg.SendGridAPIKey = "SG.test"

			s, err := New(context.Background(), cfg, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Provider = "pigeon"

	_, err := New(context.Background(), cfg, nil)
	var unknown ErrUnknownProvider
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "pigeon", unknown.Provider)
}

func TestNew_DisabledRefusesToSend(t *testing.T) {
	s, err := New(context.Background(), DefaultConfig(), nil)
	require.NoError(t, err)

	err = s.Send(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrDisabled{})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		mutate func(*Message)
		reason string
	}{
		{"missing from", " ", func(*Message) {}, "from is required"},
		{"blank recipients", "a@b.c", func(m *Message) { m.To = []string{" "} }, "at least one recipient is required"},
		{"blank subject", "a@b.c", func(m *Message) { m.Subject = "  " }, "subject is required"},
		{"no body", "a@b.c", func(m *Message) { m.TextBody, m.HTMLBody = "", "" }, "either TextBody or HTMLBody is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(&m)

			err := validate(tt.from, m)
			var invalid ErrInvalidMessage
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}

	assert.NoError(t, validate("a@b.c", validMessage()))
}

func TestBuildMessage_Headers(t *testing.T) {
	msg, err := buildMessage("noreply@optima.example", "Website Contact", validMessage())
	require.NoError(t, err)

	from := msg.GetHeader("From")
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "Website Contact")
	assert.Contains(t, from[0], "<noreply@optima.example>")

	assert.Equal(t, []string{"sales@optima.example"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"jordan@example.com"}, msg.GetHeader("Reply-To"))
	assert.Equal(t, []string{"New Contact Form Message"}, msg.GetHeader("Subject"))
}

func TestSMTPSender_InvalidMessageNeverDials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SMTPHost = "127.0.0.1"
	cfg.SMTPPort = 1

	err := NewSMTPSender(cfg).Send(context.Background(), validMessage())
	var invalid ErrInvalidMessage
	assert.ErrorAs(t, err, &invalid)
}

func TestSendGridMessage(t *testing.T) {
	m := sendGridMessage("noreply@optima.example", "Website Contact", validMessage())

	assert.Equal(t, "New Contact Form Message", m.Subject)
	assert.Equal(t, "Website Contact", m.From.Name)
	require.NotNil(t, m.ReplyTo)
	assert.Equal(t, "jordan@example.com", m.ReplyTo.Address)
	require.Len(t, m.Personalizations, 1)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "sales@optima.example", m.Personalizations[0].To[0].Address)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/plain", m.Content[0].Type)
	assert.Equal(t, "text/html", m.Content[1].Type)
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESSender(t *testing.T) {
	api := &fakeSES{}
	cfg := Config{From: "noreply@optima.example", FromName: "Website Contact"}

	require.NoError(t, NewSESSender(api, cfg, nil).Send(context.Background(), validMessage()))

	in := api.input
	require.NotNil(t, in)
	assert.Equal(t, "Website Contact <noreply@optima.example>", aws.ToString(in.FromEmailAddress))
	assert.Equal(t, []string{"sales@optima.example"}, in.Destination.ToAddresses)
	assert.Equal(t, []string{"jordan@example.com"}, in.ReplyToAddresses)
	assert.Equal(t, "hello", aws.ToString(in.Content.Simple.Body.Text.Data))
	assert.Equal(t, "<p>hello</p>", aws.ToString(in.Content.Simple.Body.Html.Data))
}

func TestSESSender_WrapsFailure(t *testing.T) {
	boom := errors.New("throttled")
	err := NewSESSender(&fakeSES{err: boom}, Config{From: "a@b.c"}, nil).Send(context.Background(), validMessage())

	var sendErr ErrSend
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, ProviderSES, sendErr.Provider)
	assert.ErrorIs(t, err, boom)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.Send(context.Background(), validMessage()))
	assert.Contains(t, buf.String(), "New Contact Form Message")

	assert.Error(t, s.Send(context.Background(), Message{Subject: "x"}))
}

func TestBuildContactMessageEmail_EscapesUserContent(t *testing.T) {
	m := BuildContactMessageEmail("sales@optima.example", ContactMessageData{
		Name:    "<script>alert(1)</script>",
		Email:   "jordan@example.com",
		Message: "line one\nline <two>",
	})

	assert.Equal(t, "New Contact Form Message", m.Subject)
	assert.Equal(t, []string{"sales@optima.example"}, m.To)
	assert.Equal(t, "jordan@example.com", m.ReplyTo)
	assert.NotContains(t, m.HTMLBody, "<script>")
	assert.Contains(t, m.HTMLBody, "&lt;script&gt;")
	assert.Contains(t, m.HTMLBody, "line one<br>line &lt;two&gt;")
	assert.Contains(t, m.TextBody, "line <two>")
}

func TestBuildDemoRequestEmail(t *testing.T) {
	m := BuildDemoRequestEmail("sales@optima.example", DemoRequestData{
		Name:      "Jordan Lee",
		Email:     "jordan@example.com",
		Company:   "Acme & Sons",
		Industry:  "Cement & Construction",
		FleetSize: "11-50 vehicles",
		RequestID: "req-1",
	})

	assert.Equal(t, "New demo request: Acme & Sons (Jordan Lee)", m.Subject)
	assert.Equal(t, "jordan@example.com", m.ReplyTo)
	assert.Contains(t, m.HTMLBody, "Acme &amp; Sons")
	assert.Contains(t, m.TextBody, "(no message)")
	assert.Contains(t, m.TextBody, "Request ID: req-1")
}

func TestBuildDemoAcknowledgementEmail(t *testing.T) {
	m := BuildDemoAcknowledgementEmail(DemoRequestData{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Company: "Acme",
	})

	assert.Equal(t, []string{"jordan@example.com"}, m.To)
	assert.Empty(t, m.ReplyTo)
	assert.Contains(t, m.TextBody, "Hi Jordan,")
	assert.Contains(t, m.TextBody, "The OPTIMA Team")
}
