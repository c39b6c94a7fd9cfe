package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"dptravels/internal/entities"
)

// StatsService keeps in-memory counters of the day's submissions and mails a
// summary to the business inbox on a cron schedule. Counters reset with the
// summary and do not survive a restart.
type StatsService struct {
	mu       sync.Mutex
	bookings int
	queries  int
	failures int

	dispatcher Dispatcher
	identity   MailIdentity
	cron       *cron.Cron
}

func NewStatsService(dispatcher Dispatcher, identity MailIdentity) *StatsService {
	return &StatsService{dispatcher: dispatcher, identity: identity}
}

func (s *StatsService) RecordBooking() {
	s.mu.Lock()
	s.bookings++
	s.mu.Unlock()
}

func (s *StatsService) RecordQuery() {
	s.mu.Lock()
	s.queries++
	s.mu.Unlock()
}

func (s *StatsService) RecordFailure() {
	s.mu.Lock()
	s.failures++
	s.mu.Unlock()
}

// Snapshot returns the current counters and resets them.
func (s *StatsService) Snapshot() (bookings, queries, failures int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bookings, queries, failures = s.bookings, s.queries, s.failures
	s.bookings, s.queries, s.failures = 0, 0, 0
	return bookings, queries, failures
}

// Start schedules the summary job. Schedule uses standard cron syntax.
func (s *StatsService) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, s.sendSummary); err != nil {
		return fmt.Errorf("invalid stats schedule %q: %w", schedule, err)
	}
	c.Start()
	s.cron = c
	logrus.WithField("schedule", schedule).Info("Daily stats summary job scheduled")
	return nil
}

func (s *StatsService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *StatsService) sendSummary() {
	bookings, queries, failures := s.Snapshot()
	if bookings == 0 && queries == 0 && failures == 0 {
		logrus.Info("Stats summary: nothing to report today")
		return
	}

	date := time.Now().Format("2 January 2006")
	n := entities.Notification{
		FromEmail: s.identity.FromEmail,
		FromName:  s.identity.FromName,
		To:        s.identity.To,
		Subject:   fmt.Sprintf("DP Travels daily summary - %s", date),
		PlainBody: fmt.Sprintf("Submissions for %s:\n\nBookings: %d\nContact queries: %d\nFailed sends: %d\n", date, bookings, queries, failures),
		HTMLBody: fmt.Sprintf(
			"<p>Submissions for %s:</p><ul><li>Bookings: %d</li><li>Contact queries: %d</li><li>Failed sends: %d</li></ul>",
			date, bookings, queries, failures,
		),
	}

	if err := s.dispatcher.Dispatch(context.Background(), n); err != nil {
		logrus.WithField("error", err).Warn("Failed to send daily stats summary")
	}
}
