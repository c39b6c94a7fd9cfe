package service

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dptravels/internal/entities"
)

var testNow = time.Date(2025, time.November, 1, 10, 30, 0, 0, time.UTC)

func validBooking() entities.BookingRequest {
	return entities.BookingRequest{
		Name:        "Asha",
		Email:       "asha@x.com",
		Phone:       "9876543210",
		Destination: "Namchi",
		Cab:         "WagonR",
		Travellers:  "2",
		BookingDate: "2025-11-05",
	}
}

func TestValidateBookingAccepted(t *testing.T) {
	req := validBooking()
	require.Nil(t, ValidateBooking(&req, testNow))
}

func TestValidateBookingMissingFieldsNamed(t *testing.T) {
	fields := map[string]func(*entities.BookingRequest){
		"name":        func(r *entities.BookingRequest) { r.Name = "" },
		"email":       func(r *entities.BookingRequest) { r.Email = "  " },
		"phone":       func(r *entities.BookingRequest) { r.Phone = "" },
		"destination": func(r *entities.BookingRequest) { r.Destination = "" },
		"cab":         func(r *entities.BookingRequest) { r.Cab = "" },
		"travellers":  func(r *entities.BookingRequest) { r.Travellers = "" },
		"bookingDate": func(r *entities.BookingRequest) { r.BookingDate = "" },
	}

	for field, blank := range fields {
		t.Run(field, func(t *testing.T) {
			req := validBooking()
			blank(&req)
			err := ValidateBooking(&req, testNow)
			require.NotNil(t, err)
			assert.Equal(t, http.StatusBadRequest, err.Code)
			assert.Contains(t, err.Message, field)
		})
	}
}

func TestValidateBookingEmailBoundary(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"asha@x.com", true},
		{"not-an-email", false},
		{"a@b", false},
		{"a b@c.co", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			req := validBooking()
			req.Email = tc.email
			err := ValidateBooking(&req, testNow)
			if tc.ok {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, "Invalid email format.", err.Message)
			}
		})
	}
}

func TestValidateBookingDateBound(t *testing.T) {
	cases := []struct {
		name string
		date string
		ok   bool
	}{
		{"today accepted", "2025-11-01", true},
		{"yesterday rejected", "2025-10-31", false},
		{"tomorrow accepted", "2025-11-02", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			req.BookingDate = tc.date
			err := ValidateBooking(&req, testNow)
			if tc.ok {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, "Booking date cannot be in the past.", err.Message)
			}
		})
	}
}

func TestValidateBookingBadDateFormat(t *testing.T) {
	req := validBooking()
	req.BookingDate = "05/11/2025"
	err := ValidateBooking(&req, testNow)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Code)
}

func TestValidateBookingTravellers(t *testing.T) {
	for _, bad := range []string{"0", "-1", "two"} {
		req := validBooking()
		req.Travellers = bad
		err := ValidateBooking(&req, testNow)
		require.NotNil(t, err, "travellers=%q", bad)
		assert.Equal(t, "Travellers must be a positive number.", err.Message)
	}
}

func TestValidateQuery(t *testing.T) {
	q := entities.ContactQuery{Name: "Asha", Email: "asha@x.com", Phone: "9876543210", Message: "Hello"}
	require.Nil(t, ValidateQuery(&q))

	missing := q
	missing.Message = ""
	err := ValidateQuery(&missing)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "message")

	long := q
	long.Message = strings.Repeat("a", maxMessageLength+1)
	err = ValidateQuery(&long)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "1000")

	atCap := q
	atCap.Message = strings.Repeat("a", maxMessageLength)
	assert.Nil(t, ValidateQuery(&atCap))
}

func TestValidateTrimsFields(t *testing.T) {
	req := validBooking()
	req.Name = "  Asha  "
	require.Nil(t, ValidateBooking(&req, testNow))
	assert.Equal(t, "Asha", req.Name)
}
