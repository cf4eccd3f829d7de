package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/leadform"
	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/events"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Bus    *events.Bus `optional:"true"`
	Sender email.Sender
	Logger *slog.Logger
}

func RegisterWorkers(p WorkerParams) {
	if p.Bus == nil {
		p.Logger.Debug("workers: NATS disabled, acknowledgement worker not started")
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startAckWorker(p.Bus, p.Sender, p.Cfg.Site.Brand, p.Logger)
			return err
		},
		OnStop: func(ctx context.Context) error {
			if sub == nil {
				return nil
			}
			// The connection drain in ProvideNatsClient may have closed it already.
			if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) && !errors.Is(err, nats.ErrBadSubscription) {
				return err
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// ack_worker
// ---------------------------------------------------------------------------

// startAckWorker confirms every demo request to the requester. Send failures
// are logged and dropped.
func startAckWorker(bus *events.Bus, sender email.Sender, brand string, logger *slog.Logger) (*nats.Subscription, error) {
	sub, err := bus.SubscribeDemoRequested(func(ctx context.Context, ev events.DemoRequested) {
		m := email.BuildDemoAcknowledgementEmail(ackData(ev, brand))
		if err := sender.Send(ctx, m); err != nil {
			logger.Warn("ack_worker: send acknowledgement failed",
				"request_id", ev.RequestID,
				"err", err,
			)
			return
		}
		logger.Info("ack_worker: acknowledgement sent", "request_id", ev.RequestID)
	})
	if err != nil {
		logger.Error("ack_worker: subscribe failed", "subject", bus.Subject(), "err", err)
		return nil, err
	}
	return sub, nil
}

func ackData(ev events.DemoRequested, brand string) email.DemoRequestData {
	return email.DemoRequestData{
		Name:      ev.Name,
		Email:     ev.Email,
		Company:   ev.Company,
		Industry:  leadform.LabelFor(leadform.IndustryOptions, ev.Industry),
		FleetSize: leadform.LabelFor(leadform.FleetSizeOptions, ev.FleetSize),
		Message:   ev.Message,
		RequestID: ev.RequestID,
		Brand:     brand,
	}
}
