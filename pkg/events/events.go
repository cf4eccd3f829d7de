// Package events publishes and consumes site events over NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const DefaultDemoRequestedSubject = "optima.demo.requested"

// DemoRequested is published after a demo request has been relayed to sales.
// Industry and FleetSize carry option values, not display labels.
type DemoRequested struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	Industry    string    `json:"industry"`
	FleetSize   string    `json:"fleetSize"`
	Message     string    `json:"message,omitempty"`
	RequestID   string    `json:"request_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// Publisher emits demo-requested events.
type Publisher interface {
	PublishDemoRequested(ctx context.Context, ev DemoRequested) error
}

// Conn is the part of *nats.Conn the bus uses.
type Conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// Bus publishes and subscribes on a single subject.
type Bus struct {
	nc      Conn
	subject string
	logger  *slog.Logger
}

func NewBus(nc Conn, subject string, logger *slog.Logger) *Bus {
	if subject == "" {
		subject = DefaultDemoRequestedSubject
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{nc: nc, subject: subject, logger: logger}
}

func (b *Bus) Subject() string { return b.subject }

func (b *Bus) PublishDemoRequested(ctx context.Context, ev DemoRequested) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode demo requested event: %w", err)
	}
	if err := b.nc.Publish(b.subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", b.subject, err)
	}
	return nil
}

// SubscribeDemoRequested runs fn for every well-formed event on the bus
// subject. Malformed payloads are logged and skipped.
func (b *Bus) SubscribeDemoRequested(fn func(ctx context.Context, ev DemoRequested)) (*nats.Subscription, error) {
	return b.nc.Subscribe(b.subject, func(msg *nats.Msg) {
		var ev DemoRequested
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			b.logger.Warn("events: malformed demo requested payload", "subject", msg.Subject, "err", err)
			return
		}
		fn(context.Background(), ev)
	})
}

// Discard drops every event. It stands in for the bus when NATS is disabled.
type Discard struct{}

func (Discard) PublishDemoRequested(context.Context, DemoRequested) error { return nil }

var (
	_ Publisher = (*Bus)(nil)
	_ Publisher = Discard{}
	_ Conn      = (*nats.Conn)(nil)
)
