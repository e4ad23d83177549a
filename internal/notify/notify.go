// Package notify delivers best-effort notifications to the dispatcher.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/jiraffe/jiraffe/internal/logging"
)

// Notifier delivers one notification. Implementations are fire-and-forget:
// delivery failures must never block or fail a sync pass.
type Notifier interface {
	Notify(title, body string)
}

// Desktop sends native desktop notifications.
type Desktop struct{}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows a desktop notification. Errors are logged and swallowed.
func (d *Desktop) Notify(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		logging.Warn("failed to deliver desktop notification", "title", title, "error", err)
	}
}

// Log writes notifications to the application log instead of the desktop,
// for headless runs.
type Log struct{}

// NewLog creates a log-backed notifier.
func NewLog() *Log {
	return &Log{}
}

// Notify records the notification at info level.
func (l *Log) Notify(title, body string) {
	logging.Info("notification", "title", title, "body", body)
}
