package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Alijeyrad/optima_web/internal/leadform"
	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/events"
	"github.com/Alijeyrad/optima_web/pkg/observability"
	"github.com/Alijeyrad/optima_web/pkg/reqctx"
)

// Outcome label values of the demo request counter.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit re-validates d and relays the resulting record to sales. A draft
	// that fails validation returns its field errors together with
	// ErrInvalidDraft.
	Submit(ctx context.Context, d leadform.Draft) (leadform.Submission, leadform.FieldErrors, error)

	// Submitter adapts Submit for controllers running in the same process.
	Submitter() leadform.Submitter
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type Config struct {
	SalesTo string
	Brand   string
}

type demoService struct {
	cfg       Config
	sender    email.Sender
	publisher events.Publisher
	requests  metric.Int64Counter
	logger    *slog.Logger
	now       func() time.Time
}

func New(cfg Config, sender email.Sender, publisher events.Publisher, logger *slog.Logger) (Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.Discard{}
	}

	// Exported by the Prometheus bridge as optima_demo_requests_total.
	requests, err := otel.Meter(observability.InstrumentationName).Int64Counter(
		"optima_demo_requests",
		metric.WithDescription("Demo requests received, by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create demo request counter: %w", err)
	}

	return &demoService{
		cfg:       cfg,
		sender:    sender,
		publisher: publisher,
		requests:  requests,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (s *demoService) Submit(ctx context.Context, d leadform.Draft) (leadform.Submission, leadform.FieldErrors, error) {
	sub, errs := leadform.Validate(d)
	if errs != nil {
		s.count(ctx, OutcomeRejected)
		return leadform.Submission{}, errs, ErrInvalidDraft
	}

	requestID := reqctx.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	msg, _ := sub.Message()
	data := email.DemoRequestData{
		Name:      sub.Name(),
		Email:     sub.Email(),
		Company:   sub.Company(),
		Industry:  leadform.LabelFor(leadform.IndustryOptions, string(sub.Industry())),
		FleetSize: leadform.LabelFor(leadform.FleetSizeOptions, string(sub.FleetSize())),
		Message:   msg,
		RequestID: requestID,
		Brand:     s.cfg.Brand,
	}
	if err := s.sender.Send(ctx, email.BuildDemoRequestEmail(s.cfg.SalesTo, data)); err != nil {
		s.count(ctx, OutcomeFailed)
		s.logger.ErrorContext(ctx, "demo: relay failed", "request_id", requestID, "err", err)
		return leadform.Submission{}, nil, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}

	// The request has been recorded; a lost event only skips the acknowledgement.
	ev := events.DemoRequested{
		Name:        sub.Name(),
		Email:       sub.Email(),
		Company:     sub.Company(),
		Industry:    string(sub.Industry()),
		FleetSize:   string(sub.FleetSize()),
		Message:     msg,
		RequestID:   requestID,
		RequestedAt: s.now().UTC(),
	}
	if err := s.publisher.PublishDemoRequested(reqctx.Detach(ctx), ev); err != nil {
		s.logger.WarnContext(ctx, "demo: publish event failed", "request_id", requestID, "err", err)
	}

	s.count(ctx, OutcomeAccepted)
	s.logger.InfoContext(ctx, "demo: request relayed",
		"request_id", requestID,
		"industry", sub.Industry(),
		"fleet_size", sub.FleetSize(),
	)
	return sub, nil, nil
}

func (s *demoService) Submitter() leadform.Submitter {
	return leadform.SubmitterFunc(func(ctx context.Context, sub leadform.Submission) leadform.Outcome {
		_, errs, err := s.Submit(ctx, sub.Draft())
		switch {
		case errors.Is(err, ErrInvalidDraft):
			return leadform.Rejected(ErrInvalidDraft.Error(), errs)
		case err != nil:
			return leadform.Rejected(ErrRelayFailed.Error(), nil)
		default:
			return leadform.Accepted()
		}
	})
}

func (s *demoService) count(ctx context.Context, outcome string) {
	s.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
