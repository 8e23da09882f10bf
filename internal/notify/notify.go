package notify

import (
	"time"

	"github.com/rs/zerolog"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is one user-visible toast: every cart mutation and every
// coupon outcome, success or failure, produces exactly one.
type Notification struct {
	Title    string
	Body     string
	Severity Severity
	Duration time.Duration
}

// Notifier is a fire-and-forget sink; implementations must not fail the
// operation that produced the notification.
type Notifier interface {
	Notify(n Notification)
}

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(n Notification) {
	evt := l.log.Info()
	if n.Severity == SeverityError {
		evt = l.log.Warn()
	}
	evt.
		Str("title", n.Title).
		Str("severity", string(n.Severity)).
		Dur("duration", n.Duration).
		Msg(n.Body)
}
