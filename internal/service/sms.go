package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"dptravels/internal/entities"
)

// SMSAlerter pings the business phone when a booking arrives, so the agency
// sees requests without watching the inbox.
type SMSAlerter struct {
	client *twilio.RestClient
	from   string
	to     string
}

func NewSMSAlerter(accountSID, authToken, from, to string) *SMSAlerter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSAlerter{client: client, from: from, to: to}
}

func (a *SMSAlerter) BookingAlert(req entities.BookingRequest) error {
	if !strings.HasPrefix(a.to, "+") {
		logrus.WithField("to", a.to).Warn("Business phone is not in E.164 format, SMS may fail")
	}

	body := fmt.Sprintf("DP Travels: new booking from %s for %s (%s) on %s. Details in your inbox.",
		req.Name, req.Destination, req.Cab, req.BookingDate)

	params := &openapi.CreateMessageParams{}
	params.SetTo(a.to)
	params.SetFrom(a.from)
	params.SetBody(body)

	if _, err := a.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
