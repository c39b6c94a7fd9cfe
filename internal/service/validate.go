package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dptravels/internal/entities"
	httperrors "dptravels/internal/errors"
)

const maxMessageLength = 1000

// Fixed contract: local-part@domain.tld, nothing fancier. Mirrors the check
// the site has always used; do not tighten it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const dateLayout = "2006-01-02"

// ValidateBooking trims every field in place and checks presence, email
// shape, travellers count and the date floor. now supplies "today" so tests
// can pin the clock. A nil return means the request is valid.
func ValidateBooking(req *entities.BookingRequest, now time.Time) *httperrors.HTTPError {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Destination = strings.TrimSpace(req.Destination)
	req.Cab = strings.TrimSpace(req.Cab)
	req.Travellers = strings.TrimSpace(req.Travellers)
	req.BookingDate = strings.TrimSpace(req.BookingDate)
	req.Message = strings.TrimSpace(req.Message)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Destination == "" {
		missing = append(missing, "destination")
	}
	if req.Cab == "" {
		missing = append(missing, "cab")
	}
	if req.Travellers == "" {
		missing = append(missing, "travellers")
	}
	if req.BookingDate == "" {
		missing = append(missing, "bookingDate")
	}
	if len(missing) > 0 {
		return httperrors.BadRequest(fmt.Sprintf("Missing required booking fields: %s.", strings.Join(missing, ", ")))
	}

	if !emailPattern.MatchString(req.Email) {
		return httperrors.BadRequest("Invalid email format.")
	}

	if n, err := strconv.Atoi(req.Travellers); err != nil || n <= 0 {
		return httperrors.BadRequest("Travellers must be a positive number.")
	}

	bookingDate, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		return httperrors.BadRequest("Invalid booking date format. Use YYYY-MM-DD.")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if bookingDate.Before(today) {
		return httperrors.BadRequest("Booking date cannot be in the past.")
	}

	return nil
}

// ValidateQuery trims every field in place and checks presence, email shape
// and the message length cap.
func ValidateQuery(q *entities.ContactQuery) *httperrors.HTTPError {
	q.Name = strings.TrimSpace(q.Name)
	q.Email = strings.TrimSpace(q.Email)
	q.Phone = strings.TrimSpace(q.Phone)
	q.Message = strings.TrimSpace(q.Message)

	var missing []string
	if q.Name == "" {
		missing = append(missing, "name")
	}
	if q.Email == "" {
		missing = append(missing, "email")
	}
	if q.Phone == "" {
		missing = append(missing, "phone")
	}
	if q.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return httperrors.BadRequest(fmt.Sprintf("Missing required fields: %s.", strings.Join(missing, ", ")))
	}

	if !emailPattern.MatchString(q.Email) {
		return httperrors.BadRequest("Invalid email format.")
	}

	if len(q.Message) > maxMessageLength {
		return httperrors.BadRequest(fmt.Sprintf("Message must be %d characters or fewer.", maxMessageLength))
	}

	return nil
}
