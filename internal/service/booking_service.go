package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"dptravels/internal/entities"
	httperrors "dptravels/internal/errors"
)

// Dispatcher is the mail-sending capability the services depend on. The
// concrete implementation lives in internal/mail; tests inject doubles.
type Dispatcher interface {
	Dispatch(ctx context.Context, n entities.Notification) error
}

// MailIdentity fixes the envelope every notification uses: the configured
// sender and the business inbox.
type MailIdentity struct {
	FromEmail string
	FromName  string
	To        string
}

// BookingService runs the validate -> compose -> dispatch pipeline for
// booking requests and contact queries. SMS alerts and stats are optional
// collaborators; nil disables them.
type BookingService struct {
	dispatcher Dispatcher
	identity   MailIdentity
	sms        *SMSAlerter
	stats      *StatsService
	now        func() time.Time
}

func NewBookingService(dispatcher Dispatcher, identity MailIdentity, sms *SMSAlerter, stats *StatsService) *BookingService {
	return &BookingService{
		dispatcher: dispatcher,
		identity:   identity,
		sms:        sms,
		stats:      stats,
		now:        time.Now,
	}
}

// SubmitBooking validates and relays one booking request. Submitting the
// same booking twice sends two emails; there is no deduplication.
func (s *BookingService) SubmitBooking(ctx context.Context, req entities.BookingRequest) error {
	if verr := ValidateBooking(&req, s.now()); verr != nil {
		return verr
	}

	notification, err := ComposeBookingNotification(s.identity.FromEmail, s.identity.FromName, s.identity.To, req)
	if err != nil {
		return httperrors.SendFailed("Failed to send booking email.", err.Error())
	}

	if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
		s.recordFailure()
		return httperrors.SendFailed("Failed to send booking email.", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"destination": req.Destination,
		"cab":         req.Cab,
		"date":        req.BookingDate,
	}).Info("Booking email sent")

	if s.stats != nil {
		s.stats.RecordBooking()
	}
	if s.sms != nil {
		// Alert the business phone without holding up the HTTP response.
		go func(r entities.BookingRequest) {
			if err := s.sms.BookingAlert(r); err != nil {
				logrus.WithField("error", err).Warn("Booking SMS alert failed")
			}
		}(req)
	}
	return nil
}

// SubmitQuery validates and relays one contact query.
func (s *BookingService) SubmitQuery(ctx context.Context, q entities.ContactQuery) error {
	if verr := ValidateQuery(&q); verr != nil {
		return verr
	}

	notification, err := ComposeQueryNotification(s.identity.FromEmail, s.identity.FromName, s.identity.To, q)
	if err != nil {
		return httperrors.SendFailed("Failed to send email.", err.Error())
	}

	if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
		s.recordFailure()
		return httperrors.SendFailed("Failed to send email.", err.Error())
	}

	logrus.WithField("email", q.Email).Info("Contact query email sent")

	if s.stats != nil {
		s.stats.RecordQuery()
	}
	return nil
}

func (s *BookingService) recordFailure() {
	if s.stats != nil {
		s.stats.RecordFailure()
	}
}
