package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"dptravels/internal/entities"
)

// Dispatcher hands notifications to a Sender with a bounded fixed-delay
// retry. No backoff, no jitter, no queue: a send that exhausts the attempt
// budget fails synchronously to the caller.
type Dispatcher struct {
	sender      Sender
	maxAttempts int
	retryDelay  time.Duration
}

func NewDispatcher(sender Sender, maxAttempts int, retryDelay time.Duration) *Dispatcher {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Dispatcher{sender: sender, maxAttempts: maxAttempts, retryDelay: retryDelay}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n entities.Notification) error {
	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(d.retryDelay)
		}
		lastErr = d.sender.Send(ctx, n)
		if lastErr == nil {
			if attempt > 1 {
				logrus.WithFields(logrus.Fields{
					"subject": n.Subject,
					"attempt": attempt,
				}).Info("Email sent after retry")
			}
			return nil
		}
		logrus.WithFields(logrus.Fields{
			"subject": n.Subject,
			"attempt": attempt,
			"error":   lastErr,
		}).Warn("Email send attempt failed")
	}
	return fmt.Errorf("giving up after %d attempts: %w", d.maxAttempts, lastErr)
}
