package leadform

import (
	"context"
	"log/slog"
	"sync"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is a short-lived, user-visible toast.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Toasts collects notifications so a renderer can show them with the next page.
type Toasts struct {
	mu    sync.Mutex
	items []Notification
}

func (t *Toasts) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, n)
}

// Drain returns the collected notifications and forgets them.
func (t *Toasts) Drain() []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.items
	t.items = nil
	return out
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	if n.Severity == SeverityDestructive {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, "notification", "title", n.Title, "description", n.Description)
}
