package entities

// BookingEmailData feeds the booking notification template.
type BookingEmailData struct {
	Name          string
	Email         string
	Phone         string
	Destination   string
	Cab           string
	Travellers    string
	FormattedDate string
	Message       string
}

// QueryEmailData feeds the contact query notification template.
type QueryEmailData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}
