package entities

// BookingRequest is the uniform booking payload. The legacy per-destination
// routes fill Destination from the routing table instead of the body.
type BookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	Cab         string `json:"cab"`
	Travellers  string `json:"travellers"`
	BookingDate string `json:"bookingDate"`
	Message     string `json:"message"`
}
