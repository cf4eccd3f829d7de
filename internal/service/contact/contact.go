package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, msg Message) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	sender   email.Sender
	to       string
	validate *validator.Validate
	logger   *slog.Logger
}

// New relays contact messages to the inbox at to.
func New(sender email.Sender, to string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactService{
		sender:   sender,
		to:       to,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *contactService) Submit(ctx context.Context, msg Message) error {
	msg = Message{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Message: strings.TrimSpace(msg.Message),
	}
	if err := s.validate.Struct(msg); err != nil {
		return ErrInvalidMessage
	}

	m := email.BuildContactMessageEmail(s.to, email.ContactMessageData{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	})
	if err := s.sender.Send(ctx, m); err != nil {
		s.logger.ErrorContext(ctx, "contact: relay failed",
			"request_id", reqctx.RequestIDFromContext(ctx),
			"err", err,
		)
		return fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	s.logger.InfoContext(ctx, "contact: message relayed", "request_id", reqctx.RequestIDFromContext(ctx))
	return nil
}
