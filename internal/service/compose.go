package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"dptravels/internal/entities"
)

var bookingBodyTmpl = template.Must(template.New("booking").Parse(`<p>New booking details:</p>
<ul>
  <li>Name: {{.Name}}</li>
  <li>Email: {{.Email}}</li>
  <li>Phone: {{.Phone}}</li>
  <li>Destination: {{.Destination}}</li>
  <li>Cab: {{.Cab}}</li>
  <li>Travellers: {{.Travellers}}</li>
  <li>Booking Date: {{.FormattedDate}}</li>
  {{if .Message}}<li>Message: {{.Message}}</li>{{end}}
</ul>
`))

var queryBodyTmpl = template.Must(template.New("query").Parse(`<h3>New Contact Message</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Message:</strong> {{.Message}}</p>
`))

// FormatLongDate renders a calendar date the way the confirmation copy does,
// e.g. "5 November 2025".
func FormatLongDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// ComposeBookingNotification turns a validated booking into the email for the
// business inbox. The date has already passed validation, so a parse failure
// here is a programming error, not user input.
func ComposeBookingNotification(from, fromName, to string, req entities.BookingRequest) (entities.Notification, error) {
	bookingDate, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		return entities.Notification{}, fmt.Errorf("unparseable booking date %q: %w", req.BookingDate, err)
	}

	data := entities.BookingEmailData{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Destination:   req.Destination,
		Cab:           req.Cab,
		Travellers:    req.Travellers,
		FormattedDate: FormatLongDate(bookingDate),
		Message:       req.Message,
	}

	var body bytes.Buffer
	if err := bookingBodyTmpl.Execute(&body, data); err != nil {
		return entities.Notification{}, fmt.Errorf("failed to render booking email body: %w", err)
	}

	plainBody := fmt.Sprintf(
		"New booking details:\n\nName: %s\nEmail: %s\nPhone: %s\nDestination: %s\nCab: %s\nTravellers: %s\nBooking Date: %s\n",
		data.Name, data.Email, data.Phone, data.Destination, data.Cab, data.Travellers, data.FormattedDate,
	)
	if data.Message != "" {
		plainBody += "Message: " + data.Message + "\n"
	}

	return entities.Notification{
		FromEmail: from,
		FromName:  fromName,
		To:        to,
		Subject:   fmt.Sprintf("New Booking Request from %s", req.Name),
		PlainBody: plainBody,
		HTMLBody:  body.String(),
	}, nil
}

// ComposeQueryNotification turns a validated contact query into the email for
// the business inbox.
func ComposeQueryNotification(from, fromName, to string, q entities.ContactQuery) (entities.Notification, error) {
	data := entities.QueryEmailData{
		Name:    q.Name,
		Email:   q.Email,
		Phone:   q.Phone,
		Message: q.Message,
	}

	var body bytes.Buffer
	if err := queryBodyTmpl.Execute(&body, data); err != nil {
		return entities.Notification{}, fmt.Errorf("failed to render query email body: %w", err)
	}

	plainBody := fmt.Sprintf(
		"New contact message:\n\nName: %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		data.Name, data.Email, data.Phone, data.Message,
	)

	return entities.Notification{
		FromEmail: from,
		FromName:  fromName,
		To:        to,
		Subject:   "New Contact Form Query",
		PlainBody: plainBody,
		HTMLBody:  body.String(),
	}, nil
}
