package leadform

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the interaction state of one form instance.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Variant holds what differs between the forms sharing this pipeline: the
// toasts they show and whether success closes the enclosing dialog.
type Variant struct {
	Name             string
	Success          Notification
	Rejection        Notification
	TransportFailure Notification
	AutoDismiss      time.Duration
}

var (
	// CTAVariant is the inline "get a tailored plan" form.
	CTAVariant = Variant{
		Name: "cta",
		Success: Notification{
			Title:       "Thanks! We'll be in touch.",
			Description: "Your request has been recorded.",
			Severity:    SeverityDefault,
		},
		Rejection: Notification{
			Title:       "Submission failed",
			Description: "Please try again.",
			Severity:    SeverityDestructive,
		},
		TransportFailure: Notification{
			Title:       "Submission failed",
			Description: "We could not reach the server. Check your connection and try again.",
			Severity:    SeverityDestructive,
		},
	}

	// DemoVariant is the "request a live demo" dialog.
	DemoVariant = Variant{
		Name: "demo",
		Success: Notification{
			Title:       "Request received",
			Description: "We'll reach out shortly to schedule your demo.",
			Severity:    SeverityDefault,
		},
		Rejection: Notification{
			Title:       "Something went wrong",
			Description: "Please try again.",
			Severity:    SeverityDestructive,
		},
		TransportFailure: Notification{
			Title:       "Something went wrong",
			Description: "We could not reach the server. Please try again in a moment.",
			Severity:    SeverityDestructive,
		},
		AutoDismiss: 1200 * time.Millisecond,
	}
)

// Controller drives one form instance: edits go to the Store, Submit
// validates and hands valid submissions to the Submitter.
//
// Idle -> Submitting -> Success | Idle. Success holds until Dismiss.
type Controller struct {
	store     *Store
	variant   Variant
	submitter Submitter
	notifier  Notifier
	logger    *slog.Logger
	onDismiss func()
	noTimer   bool

	mu    sync.Mutex
	state State
	gen   uint64
	timer *time.Timer
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

func WithStore(s *Store) ControllerOption {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

func WithNotifier(n Notifier) ControllerOption {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnDismiss registers a hook run after every Dismiss, including the
// automatic one a variant schedules after success.
func WithOnDismiss(fn func()) ControllerOption {
	return func(c *Controller) { c.onDismiss = fn }
}

// WithoutAutoDismiss keeps the controller from scheduling the variant's
// auto-dismiss. Hosts that build a controller per request and render the
// dismissal themselves use it.
func WithoutAutoDismiss() ControllerOption {
	return func(c *Controller) { c.noTimer = true }
}

func NewController(v Variant, s Submitter, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:     NewStore(),
		variant:   v,
		submitter: s,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = LogNotifier{Logger: c.logger}
	}
	return c
}

func (c *Controller) Store() *Store { return c.store }

func (c *Controller) Variant() Variant { return c.variant }

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Edit records a new value for field and clears its error. Edits are accepted
// in every state, including while a submission is in flight.
func (c *Controller) Edit(field Field, value string) {
	c.store.SetField(field, value)
}

// Submit validates the current draft and, if it is valid, sends it. A
// validation failure is reported as a Rejected outcome without any network
// call. Submit refuses to run while another submission is in flight or after
// a success that has not been dismissed.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return Outcome{}, ErrSubmitInProgress
	case StateSuccess:
		c.mu.Unlock()
		return Outcome{}, ErrAlreadySubmitted
	}
	c.state = StateSubmitting
	gen := c.gen
	c.mu.Unlock()

	sub, errs := Validate(c.store.Draft())
	if errs != nil {
		c.store.SetErrors(errs)
		c.setState(StateIdle)
		return Rejected("", errs), nil
	}

	out := c.submitter.Submit(ctx, sub)
	c.finish(gen, out)
	return out, nil
}

func (c *Controller) finish(gen uint64, out Outcome) {
	c.mu.Lock()
	if gen != c.gen {
		// Dismissed while in flight: the form was already reset.
		c.state = StateIdle
		c.mu.Unlock()
		return
	}

	if out.Kind == OutcomeAccepted {
		c.state = StateSuccess
		if d := c.variant.AutoDismiss; d > 0 && !c.noTimer {
			c.timer = time.AfterFunc(d, c.Dismiss)
		}
		c.mu.Unlock()

		c.store.Reset()
		c.notifier.Notify(c.variant.Success)
		return
	}

	c.state = StateIdle
	c.mu.Unlock()

	switch out.Kind {
	case OutcomeRejected:
		c.store.SetErrors(out.Errors)
		c.logger.Info("lead form submission rejected",
			"variant", c.variant.Name,
			"message", out.Message,
			"fields", len(out.Errors),
		)
		c.notifier.Notify(c.variant.Rejection)
	default:
		c.logger.Error("lead form submission failed",
			"variant", c.variant.Name,
			"kind", out.Kind,
			"reason", out.Reason,
		)
		c.notifier.Notify(c.variant.TransportFailure)
	}
}

// Dismiss closes the form: any pending auto-dismiss is cancelled, values and
// errors are cleared and the controller returns to Idle. Reopening a dialog
// after success goes through Dismiss as well.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	if c.state != StateSubmitting {
		c.state = StateIdle
	}
	c.mu.Unlock()

	c.store.Reset()
	if c.onDismiss != nil {
		c.onDismiss()
	}
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}
